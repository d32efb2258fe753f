package outbox

import (
	"context"
	"fmt"

	"orderhub/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Append пишет событие в outbox. Вызывается в транзакции перехода заказа,
// поэтому строка появляется тогда и только тогда, когда переход закоммичен.
func (r *Repository) Append(ctx context.Context, orderID string, eventType entities.OrderEventType, payload []byte) error {
	query := `INSERT INTO order_events (order_id, event_type, payload)
		VALUES ($1, $2, $3)`

	_, err := r.querier.Exec(ctx, query, orderID, eventType.String(), payload)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository append error: %w", err)
	}

	return nil
}

func (r *Repository) ListUnpublished(ctx context.Context, limit int) ([]entities.OrderEvent, error) {
	query := `SELECT id, order_id, event_type, payload, created_at, published_at
		FROM order_events
		WHERE published_at IS NULL
		ORDER BY id
		LIMIT $1`

	rows, err := r.querier.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository listunpublished error: %w", err)
	}
	defer rows.Close()

	eventModels := make([]OrderEventDB, 0, limit)
	for rows.Next() {
		var eventModel OrderEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.OrderID,
			&eventModel.EventType,
			&eventModel.Payload,
			&eventModel.CreatedAt,
			&eventModel.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository listunpublished error: %w", err)
		}
		eventModels = append(eventModels, eventModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository listunpublished error: %w", err)
	}

	return ToDomainList(eventModels), nil
}

func (r *Repository) MarkPublished(ctx context.Context, eventIDs []int64) error {
	if len(eventIDs) == 0 {
		return nil
	}

	query := `UPDATE order_events SET published_at = NOW() WHERE id = ANY($1)`

	_, err := r.querier.Exec(ctx, query, eventIDs)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository markpublished error: %w", err)
	}

	return nil
}
