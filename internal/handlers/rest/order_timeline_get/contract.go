//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_timeline_get_test
package order_timeline_get

import (
	"context"

	"orderhub/internal/entities"
	"orderhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetOrderTimeline(ctx context.Context, orderID string) ([]entities.HistoryEntry, error)
}
