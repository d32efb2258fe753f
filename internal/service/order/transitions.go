package order

import "orderhub/internal/entities"

// Фиксированная последовательность фулфилмента. Шаги не пропускаются,
// назад переходов нет; cancelled достижим из любого нетерминального статуса.
var nextFulfillmentStep = map[entities.OrderStatusType]entities.OrderStatusType{
	entities.OrderPending:    entities.OrderConfirmed,
	entities.OrderConfirmed:  entities.OrderProcessing,
	entities.OrderProcessing: entities.OrderShipped,
	entities.OrderShipped:    entities.OrderDelivered,
}

func isValidOrderStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderConfirmed,
		entities.OrderProcessing,
		entities.OrderShipped,
		entities.OrderDelivered,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}

// checkTransition проверяет допустимость перехода current -> target.
func checkTransition(current, target entities.OrderStatusType) error {
	if current.IsTerminal() {
		return ErrTerminalState
	}
	if target == entities.OrderCancelled {
		return nil
	}
	if nextFulfillmentStep[current] != target {
		return ErrInvalidTransition
	}
	return nil
}
