//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_approve_put_test
package order_approve_put

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
	ApproveOrder(ctx context.Context, orderID string, deliveryCharge entities.Money) (*entities.Order, error)
}
