package outbox

import (
	"context"
	"fmt"
)

const defaultBatchSize = 100

// Dispatcher доставляет закоммиченные события из outbox в брокер.
// Семантика at-least-once: событие помечается опубликованным только после
// успешной публикации, при падении между ними будет опубликовано повторно.
type Dispatcher struct {
	repository Repository
	publisher  Publisher
	batchSize  int
}

func New(repository Repository, publisher Publisher, batchSize int) *Dispatcher {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Dispatcher{
		repository: repository,
		publisher:  publisher,
		batchSize:  batchSize,
	}
}

// DispatchPending публикует очередную пачку неопубликованных событий.
// Возвращает число опубликованных. Порядок публикации - порядок записи (id).
func (d *Dispatcher) DispatchPending(ctx context.Context) (int, error) {
	events, err := d.repository.ListUnpublished(ctx, d.batchSize)
	if err != nil {
		return 0, fmt.Errorf("list unpublished events: %w", err)
	}
	if len(events) == 0 {
		return 0, nil
	}

	published := make([]int64, 0, len(events))
	var publishErr error
	for _, event := range events {
		if err := d.publisher.Publish(ctx, event); err != nil {
			// брокер недоступен - остаток пачки доедет на следующем тике
			publishErr = fmt.Errorf("publish event %d: %w", event.ID, err)
			break
		}
		published = append(published, event.ID)
	}

	if len(published) > 0 {
		if err := d.repository.MarkPublished(ctx, published); err != nil {
			return len(published), fmt.Errorf("mark published: %w", err)
		}
	}

	return len(published), publishErr
}
