package order

import (
	"context"

	"golang.org/x/sync/errgroup"
	"orderhub/internal/entities"
)

// Потолок одновременных одобрений, чтобы пачка не выела пул соединений.
const defaultBulkConcurrency = 8

// BulkApproveResult - результат одобрения одного заказа из пачки.
type BulkApproveResult struct {
	OrderID   string
	Succeeded bool
	Err       error
}

// BulkApproveOrders одобряет каждый заказ независимо: заказы обрабатываются
// параллельно (с ограничением), ошибка одного никогда не прерывает остальные.
// Результаты возвращаются в порядке входных идентификаторов.
func (s *Order) BulkApproveOrders(ctx context.Context, orderIDs []string, deliveryCharge entities.Money) []BulkApproveResult {
	results := make([]BulkApproveResult, len(orderIDs))

	var group errgroup.Group
	group.SetLimit(s.bulkLimit)

	for i, orderID := range orderIDs {
		group.Go(func() error {
			_, err := s.ApproveOrder(ctx, orderID, deliveryCharge)
			results[i] = BulkApproveResult{
				OrderID:   orderID,
				Succeeded: err == nil,
				Err:       err,
			}
			// ошибки изолированы по заказам, группу не роняем
			return nil
		})
	}

	// горутины ошибок не возвращают
	_ = group.Wait()

	return results
}
