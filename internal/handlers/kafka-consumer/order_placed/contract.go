//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_placed_test
package order_placed

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
	CreateOrder(ctx context.Context, placement entities.OrderPlacement) (*entities.Order, error)
}

// placedEvent - событие системы оформления о размещенном заказе.
type placedEvent struct {
	OrderID       string            `json:"order_id"`
	OrderNumber   string            `json:"order_number"`
	Items         []placedEventItem `json:"items"`
	Subtotal      int64             `json:"subtotal"`
	Discount      int64             `json:"discount"`
	Tax           int64             `json:"tax"`
	PaymentMethod string            `json:"payment_method"`
	PaymentStatus string            `json:"payment_status"`
	PlacedAt      string            `json:"placed_at"`
}

type placedEventItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}
