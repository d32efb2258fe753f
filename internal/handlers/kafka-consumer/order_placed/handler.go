package order_placed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"orderhub/internal/entities"
	orderservice "orderhub/internal/service/order"
	"orderhub/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.placed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.placed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение. Возвращает true, если нужно
// прервать ConsumeClaim (отмена контекста); false - продолжаем со следующим.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event placedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("order.placed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("order_number", event.OrderNumber),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("order.placed processing")

	order, err := h.orderService.CreateOrder(ctx, toPlacement(event))
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.placed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderExists):
			// at-least-once: повторная доставка уже созданного заказа - не ошибка
			msgLog.Info("order.placed handler order already exists, skipping")

		case errors.Is(err, orderservice.ErrMissingRequiredFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.placed handler invalid placement payload")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.placed handler failed to create order")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("total_amount", order.TotalAmount),
	).Info("order.placed: created")

	sess.MarkMessage(message, "")
	return false
}

func toPlacement(event placedEvent) entities.OrderPlacement {
	items := make([]entities.OrderItem, 0, len(event.Items))
	for _, item := range event.Items {
		items = append(items, entities.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}

	placement := entities.OrderPlacement{
		ID:            event.OrderID,
		OrderNumber:   event.OrderNumber,
		Items:         items,
		Subtotal:      event.Subtotal,
		Discount:      event.Discount,
		Tax:           event.Tax,
		PaymentMethod: event.PaymentMethod,
		PaymentStatus: event.PaymentStatus,
	}

	if placedAt, err := time.Parse(time.RFC3339, event.PlacedAt); err == nil {
		placement.PlacedAt = placedAt
	}

	return placement
}
