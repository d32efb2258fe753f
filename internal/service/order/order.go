package order

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"orderhub/internal/entities"
)

const (
	historyOrderPlaced   = "Order Placed"
	historyOrderApproved = "Order Approved"
	historyOrderRejected = "Order Rejected"
	historyChargeUpdated = "Delivery Charge Updated"
)

type Order struct {
	repository Repository
	outbox     Outbox
	txManager  TxManager
	bulkLimit  int
}

func New(repository Repository, outbox Outbox, txManager TxManager, bulkLimit int) *Order {
	if bulkLimit <= 0 {
		bulkLimit = defaultBulkConcurrency
	}
	return &Order{
		repository: repository,
		outbox:     outbox,
		txManager:  txManager,
		bulkLimit:  bulkLimit,
	}
}

// CreateOrder регистрирует заказ, размещенный внешней системой оформления.
// Заказ всегда создается в состоянии (pending, pending); суммы корзины
// принимаются как есть и после создания не меняются.
func (s *Order) CreateOrder(ctx context.Context, placement entities.OrderPlacement) (*entities.Order, error) {
	if !isValidOrderID(placement.ID) || placement.OrderNumber == "" {
		return nil, ErrMissingRequiredFields
	}
	if placement.Subtotal < 0 || placement.Discount < 0 || placement.Tax < 0 {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	placedAt := placement.PlacedAt
	if placedAt.IsZero() {
		placedAt = now
	}

	newOrder := entities.Order{
		ID:             placement.ID,
		OrderNumber:    placement.OrderNumber,
		Items:          placement.Items,
		Subtotal:       placement.Subtotal,
		Discount:       placement.Discount,
		Tax:            placement.Tax,
		DeliveryCharge: 0,
		ApprovalStatus: entities.ApprovalPending,
		OrderStatus:    entities.OrderPending,
		PaymentMethod:  placement.PaymentMethod,
		PaymentStatus:  placement.PaymentStatus,
		Version:        1,
		CreatedAt:      placedAt,
		UpdatedAt:      now,
	}
	newOrder.RecalculateTotal()

	entry := entities.HistoryEntry{
		Status:    historyOrderPlaced,
		CreatedAt: now,
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repository.Create(ctx, newOrder); err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if err := s.repository.AppendHistory(ctx, newOrder.ID, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	newOrder.History = []entities.HistoryEntry{entry}
	return &newOrder, nil
}

// ApproveOrder - одностороний переход pending -> approved. Вместе со статусом
// фиксируется стоимость доставки и пересчитывается итоговая сумма.
func (s *Order) ApproveOrder(ctx context.Context, orderID string, deliveryCharge entities.Money) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if deliveryCharge < 0 {
		return nil, ErrInvalidDeliveryCharge
	}

	var approved *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if current.ApprovalStatus != entities.ApprovalPending {
			return ErrApprovalNotPending
		}

		now := time.Now().UTC()
		current.ApprovalStatus = entities.ApprovalApproved
		current.ApprovedAt = &now
		current.DeliveryCharge = deliveryCharge
		current.RecalculateTotal()

		modify := entities.OrderModify{
			ApprovalStatus: pointer.To(entities.ApprovalApproved),
			ApprovedAt:     &now,
			DeliveryCharge: &deliveryCharge,
			TotalAmount:    &current.TotalAmount,
		}

		updated, err := s.repository.Update(ctx, current.ID, current.Version, modify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		entry := entities.HistoryEntry{
			Status:    historyOrderApproved,
			CreatedAt: now,
		}
		if err := s.repository.AppendHistory(ctx, current.ID, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if err := s.appendEvent(ctx, updated, entities.EventOrderApproved, now); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		updated.History = append(current.History, entry)
		approved = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

// RejectOrder - одностороний переход pending -> rejected, причина обязательна.
func (s *Order) RejectOrder(ctx context.Context, orderID string, reason string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidRejectionReason(reason) {
		return nil, ErrEmptyRejectionReason
	}

	var rejected *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if current.ApprovalStatus != entities.ApprovalPending {
			return ErrApprovalNotPending
		}

		now := time.Now().UTC()
		current.ApprovalStatus = entities.ApprovalRejected
		current.RejectionReason = reason

		modify := entities.OrderModify{
			ApprovalStatus:  pointer.To(entities.ApprovalRejected),
			RejectionReason: &reason,
		}

		updated, err := s.repository.Update(ctx, current.ID, current.Version, modify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		entry := entities.HistoryEntry{
			Status:    historyOrderRejected,
			Note:      reason,
			CreatedAt: now,
		}
		if err := s.repository.AppendHistory(ctx, current.ID, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if err := s.appendEvent(ctx, updated, entities.EventOrderRejected, now); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		updated.History = append(current.History, entry)
		rejected = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

// ChangeOrderStatus продвигает заказ на следующий шаг фулфилмента либо отменяет его.
// Продвижение требует одобренного заказа; отмена от одобрения не зависит.
func (s *Order) ChangeOrderStatus(ctx context.Context, orderID string, target entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidOrderStatus(target) {
		return nil, ErrUnknownStatus
	}

	var changed *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := checkTransition(current.OrderStatus, target); err != nil {
			return err
		}
		if target != entities.OrderCancelled && current.ApprovalStatus != entities.ApprovalApproved {
			return ErrOrderNotApproved
		}

		now := time.Now().UTC()
		modify := entities.OrderModify{
			OrderStatus: &target,
		}

		updated, err := s.repository.Update(ctx, current.ID, current.Version, modify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		entry := entities.HistoryEntry{
			Status:    target.String(),
			CreatedAt: now,
		}
		if err := s.repository.AppendHistory(ctx, current.ID, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		if err := s.appendEvent(ctx, updated, entities.EventOrderStatusChanged, now); err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		updated.History = append(current.History, entry)
		changed = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	return changed, nil
}

// SetDeliveryCharge меняет стоимость доставки нетерминального заказа и атомарно
// пересчитывает итоговую сумму. Одобрение заказа тут не требуется - так ведет
// себя консоль дистрибьютора, и эта асимметрия сохранена намеренно.
func (s *Order) SetDeliveryCharge(ctx context.Context, orderID string, amount entities.Money) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if amount < 0 {
		return nil, ErrInvalidDeliveryCharge
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if current.OrderStatus.IsTerminal() {
			return ErrTerminalState
		}

		now := time.Now().UTC()
		oldCharge := current.DeliveryCharge
		current.DeliveryCharge = amount
		current.RecalculateTotal()

		modify := entities.OrderModify{
			DeliveryCharge: &amount,
			TotalAmount:    &current.TotalAmount,
		}

		res, err := s.repository.Update(ctx, current.ID, current.Version, modify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		// аудит растет даже при записи того же значения
		entry := entities.HistoryEntry{
			Status:    historyChargeUpdated,
			Note:      fmt.Sprintf("delivery charge changed from %d to %d", oldCharge, amount),
			CreatedAt: now,
		}
		if err := s.repository.AppendHistory(ctx, current.ID, entry); err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		res.History = append(current.History, entry)
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

func (s *Order) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.OrderStatus != nil && !isValidOrderStatus(*filter.OrderStatus) {
		return nil, ErrUnknownStatus
	}

	orders, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// GetOrderTimeline возвращает историю заказа в порядке записи, старые вперед.
// Никакой реконструкции по текущему статусу - только буквальная запись событий.
func (s *Order) GetOrderTimeline(ctx context.Context, orderID string) ([]entities.HistoryEntry, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	// существование заказа проверяем явно, пустая история - валидный ответ
	if _, err := s.repository.GetByID(ctx, orderID); err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	history, err := s.repository.GetHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get history: %w", err)
	}
	return history, nil
}
