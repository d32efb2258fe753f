package event_dispatch

import (
	"context"
	"time"

	"orderhub/pkg/logger"
)

type Service interface {
	DispatchPending(ctx context.Context) (int, error)
}

type EventDispatch struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewEventDispatch(log logger.Logger, service Service, interval time.Duration) *EventDispatch {
	return &EventDispatch{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (e *EventDispatch) TTL() time.Duration {
	return e.interval
}

func (e *EventDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, e.interval)
	defer cancel()

	published, err := e.service.DispatchPending(ctxWithTimeout)

	if published > 0 {
		e.log.With(
			logger.NewField("published_events", published),
		).Info("event dispatch")
	}

	return err
}

func (e *EventDispatch) Info() string {
	return "event dispatch"
}
