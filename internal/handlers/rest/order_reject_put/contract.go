//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_reject_put_test
package order_reject_put

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
	RejectOrder(ctx context.Context, orderID string, reason string) (*entities.Order, error)
}
