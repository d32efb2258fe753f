package order

import "errors"

var (
	// валидация входа
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidDeliveryCharge = errors.New("delivery charge must be non-negative")
	ErrEmptyRejectionReason  = errors.New("rejection reason is required")
	ErrUnknownStatus         = errors.New("unknown order status")
	ErrMissingRequiredFields = errors.New("missing required fields")

	// недопустимое состояние / переход
	ErrApprovalNotPending = errors.New("order approval already resolved")
	ErrOrderNotApproved   = errors.New("order is not approved")
	ErrInvalidTransition  = errors.New("illegal order status transition")
	ErrTerminalState      = errors.New("order is in terminal state")

	ErrOrderNotFound   = errors.New("order not found")
	ErrOrderExists     = errors.New("order already exists")
	ErrVersionConflict = errors.New("order was modified concurrently")
)
