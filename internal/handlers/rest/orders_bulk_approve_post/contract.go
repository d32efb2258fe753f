//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_bulk_approve_post_test
package orders_bulk_approve_post

import (
	"context"

	"orderhub/internal/entities"
	"orderhub/internal/service/order"
	"orderhub/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	BulkApproveOrders(ctx context.Context, orderIDs []string, deliveryCharge entities.Money) []order.BulkApproveResult
}
