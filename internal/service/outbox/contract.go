//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"

	"orderhub/internal/entities"
)

type Repository interface {
	ListUnpublished(ctx context.Context, limit int) ([]entities.OrderEvent, error)
	MarkPublished(ctx context.Context, eventIDs []int64) error
}

type Publisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}
