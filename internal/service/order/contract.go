//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"orderhub/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) error
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)

	// Update применяет частичное обновление с проверкой версии (optimistic lock).
	Update(ctx context.Context, orderID string, expectedVersion int64, modify entities.OrderModify) (*entities.Order, error)

	AppendHistory(ctx context.Context, orderID string, entry entities.HistoryEntry) error
	GetHistory(ctx context.Context, orderID string) ([]entities.HistoryEntry, error)
}

// Outbox пишет событие перехода в той же транзакции, что и сам переход.
type Outbox interface {
	Append(ctx context.Context, orderID string, eventType entities.OrderEventType, payload []byte) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
