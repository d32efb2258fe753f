package outbox

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"orderhub/internal/entities"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type OrderEventDB struct {
	ID          int64
	OrderID     string
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

func ToDomain(e *OrderEventDB) *entities.OrderEvent {
	if e == nil {
		return nil
	}
	return &entities.OrderEvent{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Type:        entities.OrderEventType(e.EventType),
		Payload:     e.Payload,
		CreatedAt:   e.CreatedAt,
		PublishedAt: e.PublishedAt,
	}
}

func ToDomainList(eventModels []OrderEventDB) []entities.OrderEvent {
	events := make([]entities.OrderEvent, 0, len(eventModels))
	for i := range eventModels {
		events = append(events, *ToDomain(&eventModels[i]))
	}
	return events
}
