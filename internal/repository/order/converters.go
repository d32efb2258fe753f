package order

import (
	"encoding/json"
	"fmt"

	"orderhub/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	items, err := itemsToDomain(o.ItemsJSON)
	if err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}

	order := &entities.Order{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		Items:          items,
		Subtotal:       o.Subtotal,
		Discount:       o.Discount,
		Tax:            o.Tax,
		DeliveryCharge: o.DeliveryCharge,
		TotalAmount:    o.TotalAmount,
		ApprovalStatus: entities.ApprovalStatusType(o.ApprovalStatus),
		OrderStatus:    entities.OrderStatusType(o.OrderStatus),
		ApprovedAt:     o.ApprovedAt,
		PaymentMethod:  o.PaymentMethod,
		PaymentStatus:  o.PaymentStatus,
		Version:        o.Version,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
	if o.RejectionReason != nil {
		order.RejectionReason = *o.RejectionReason
	}

	return order, nil
}

func itemsToDomain(raw []byte) ([]entities.OrderItem, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var itemModels []itemDB
	if err := json.Unmarshal(raw, &itemModels); err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(itemModels))
	for _, item := range itemModels {
		items = append(items, entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return items, nil
}

func itemsFromDomain(items []entities.OrderItem) ([]byte, error) {
	itemModels := make([]itemDB, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, itemDB{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return json.Marshal(itemModels)
}

func historyToDomain(entryModels []HistoryEntryDB) []entities.HistoryEntry {
	entries := make([]entities.HistoryEntry, 0, len(entryModels))
	for _, entry := range entryModels {
		entries = append(entries, entities.HistoryEntry{
			Status:    entry.Status,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		})
	}
	return entries
}
