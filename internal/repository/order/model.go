package order

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type OrderDB struct {
	ID              string
	OrderNumber     string
	ItemsJSON       []byte
	Subtotal        int64
	Discount        int64
	Tax             int64
	DeliveryCharge  int64
	TotalAmount     int64
	ApprovalStatus  string
	OrderStatus     string
	RejectionReason *string
	ApprovedAt      *time.Time
	PaymentMethod   string
	PaymentStatus   string
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type HistoryEntryDB struct {
	ID        int64
	OrderID   string
	Status    string
	Note      string
	CreatedAt time.Time
}

// itemDB - формат элемента заказа в колонке items (jsonb).
type itemDB struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int64  `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}
