package order

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"orderhub/internal/entities"
)

// eventPayload - тело события перехода для подсистемы уведомлений.
type eventPayload struct {
	OrderID         string `json:"order_id"`
	OrderNumber     string `json:"order_number"`
	ApprovalStatus  string `json:"approval_status"`
	OrderStatus     string `json:"order_status"`
	RejectionReason string `json:"rejection_reason,omitempty"`
	DeliveryCharge  int64  `json:"delivery_charge"`
	TotalAmount     int64  `json:"total_amount"`
	OccurredAt      string `json:"occurred_at"`
}

// appendEvent кладет событие в outbox в текущей транзакции. Публикацией в Kafka
// занимается отдельный диспетчер, коммит перехода от брокера не зависит.
func (s *Order) appendEvent(ctx context.Context, order *entities.Order, eventType entities.OrderEventType, occurredAt time.Time) error {
	payload, err := json.Marshal(eventPayload{
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		ApprovalStatus:  order.ApprovalStatus.String(),
		OrderStatus:     order.OrderStatus.String(),
		RejectionReason: order.RejectionReason,
		DeliveryCharge:  order.DeliveryCharge,
		TotalAmount:     order.TotalAmount,
		OccurredAt:      occurredAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	return s.outbox.Append(ctx, order.ID, eventType, payload)
}
