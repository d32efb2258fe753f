package entities

import "time"

type OrderEventType string

const (
	EventOrderApproved      OrderEventType = "order.approved"
	EventOrderRejected      OrderEventType = "order.rejected"
	EventOrderStatusChanged OrderEventType = "order.status.changed"
)

func (t OrderEventType) String() string {
	return string(t)
}

// OrderEvent - запись outbox. Пишется в той же транзакции, что и переход заказа,
// публикуется в Kafka отдельным диспетчером (at-least-once).
type OrderEvent struct {
	ID          int64
	OrderID     string
	Type        OrderEventType
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}
