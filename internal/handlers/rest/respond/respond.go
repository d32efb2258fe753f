package respond

import (
	"encoding/json"
	"net/http"

	"orderhub/internal/entities"
	"orderhub/internal/generated/dto"
)

// JSON пишет тело ответа; ошибку кодирования возвращает хендлеру для лога.
func JSON(w http.ResponseWriter, statusCode int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

// Error пишет тело с конкретной причиной отказа - UI показывает ее пользователю.
func Error(w http.ResponseWriter, statusCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	//nolint:errcheck // после WriteHeader сделать уже ничего нельзя
	_ = json.NewEncoder(w).Encode(dto.Error{Error: err.Error()})
}

func ToOrderDTO(order *entities.Order) dto.Order {
	items := make([]dto.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	return dto.Order{
		ID:              order.ID,
		OrderNumber:     order.OrderNumber,
		Items:           items,
		Subtotal:        order.Subtotal,
		Discount:        order.Discount,
		Tax:             order.Tax,
		DeliveryCharge:  order.DeliveryCharge,
		TotalAmount:     order.TotalAmount,
		ApprovalStatus:  order.ApprovalStatus.String(),
		OrderStatus:     order.OrderStatus.String(),
		RejectionReason: order.RejectionReason,
		ApprovedAt:      order.ApprovedAt,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		History:         ToHistoryDTO(order.History),
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func ToHistoryDTO(entries []entities.HistoryEntry) []dto.HistoryEntry {
	history := make([]dto.HistoryEntry, 0, len(entries))
	for _, entry := range entries {
		history = append(history, dto.HistoryEntry{
			Status:    entry.Status,
			Note:      entry.Note,
			CreatedAt: entry.CreatedAt,
		})
	}
	return history
}
