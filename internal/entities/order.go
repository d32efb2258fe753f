package entities

import "time"

// Денежные суммы храним в минорных единицах (пайсы), float для денег не используем.
type Money = int64

type Order struct {
	ID              string
	OrderNumber     string
	Items           []OrderItem
	Subtotal        Money
	Discount        Money
	Tax             Money
	DeliveryCharge  Money
	TotalAmount     Money
	ApprovalStatus  ApprovalStatusType
	OrderStatus     OrderStatusType
	RejectionReason string
	ApprovedAt      *time.Time
	PaymentMethod   string
	PaymentStatus   string
	History         []HistoryEntry
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int64
	UnitPrice Money
}

// HistoryEntry - одна запись аудита, после записи не изменяется.
type HistoryEntry struct {
	Status    string
	Note      string
	CreatedAt time.Time
}

type ApprovalStatusType string

const (
	ApprovalPending  ApprovalStatusType = "pending"
	ApprovalApproved ApprovalStatusType = "approved"
	ApprovalRejected ApprovalStatusType = "rejected"
)

func (s ApprovalStatusType) String() string {
	return string(s)
}

// IsTerminal: approved и rejected - конечные состояния, возврата в pending нет.
func (s ApprovalStatusType) IsTerminal() bool {
	return s == ApprovalApproved || s == ApprovalRejected
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderProcessing OrderStatusType = "processing"
	OrderShipped    OrderStatusType = "shipped"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// RecalculateTotal - единственный путь вычисления итоговой суммы заказа.
// Инвариант: TotalAmount == Subtotal - Discount + Tax + DeliveryCharge.
func (o *Order) RecalculateTotal() {
	o.TotalAmount = o.Subtotal - o.Discount + o.Tax + o.DeliveryCharge
}

// OrderModify - опциональные поля для частичного обновления заказа.
// Суммы корзины и состав заказа сюда не входят: после создания они неизменны.
type OrderModify struct {
	ApprovalStatus  *ApprovalStatusType
	OrderStatus     *OrderStatusType
	RejectionReason *string
	ApprovedAt      *time.Time
	DeliveryCharge  *Money
	TotalAmount     *Money
}

// OrderPlacement - данные от внешней системы размещения заказов.
// Суммы корзины (subtotal, discount, tax) принадлежат ей и после создания не меняются.
type OrderPlacement struct {
	ID            string
	OrderNumber   string
	Items         []OrderItem
	Subtotal      Money
	Discount      Money
	Tax           Money
	PaymentMethod string
	PaymentStatus string
	PlacedAt      time.Time
}

type OrderFilter struct {
	Since          *time.Time
	OrderStatus    *OrderStatusType
	ApprovalStatus *ApprovalStatusType
}
