//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	order_events "orderhub/internal/gateway/kafka/order_events"
	order_approve_put "orderhub/internal/handlers/rest/order_approve_put"
	order_get "orderhub/internal/handlers/rest/order_get"
	order_put "orderhub/internal/handlers/rest/order_put"
	order_reject_put "orderhub/internal/handlers/rest/order_reject_put"
	order_timeline_get "orderhub/internal/handlers/rest/order_timeline_get"
	orders_bulk_approve_post "orderhub/internal/handlers/rest/orders_bulk_approve_post"
	orders_get "orderhub/internal/handlers/rest/orders_get"
	"orderhub/internal/handlers/tasks/event_dispatch"
	"orderhub/internal/pkg/config"

	orderRepo "orderhub/internal/repository/order"
	outboxRepo "orderhub/internal/repository/outbox"
	orderService "orderhub/internal/service/order"
	outboxService "orderhub/internal/service/outbox"

	"orderhub/pkg/background"
	"orderhub/pkg/logger"
	"orderhub/pkg/querier"
	"orderhub/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	DispatchInterval  time.Duration
	DispatchBatchSize int
	BulkConcurrency   int
	EventsTopic       string
)

type Application struct {
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_put.Service
	order_approve_put.Service
	order_reject_put.Service
	order_timeline_get.Service
	orders_bulk_approve_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideDispatchInterval,
		provideDispatchBatchSize,
		provideBulkConcurrency,
		provideEventsTopic,

		provideOrderRepository,
		provideOutboxRepository,

		provideServiceOrder,
		provideEventsGateway,
		provideOutboxDispatcher,

		provideEventDispatchTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),
		wire.Bind(new(outboxService.Publisher), new(*order_events.Gateway)),

		wire.Bind(new(event_dispatch.Service), new(*outboxService.Dispatcher)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-placed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBulkConcurrency,

		provideOrderRepository,
		provideOutboxRepository,

		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.Outbox), new(*outboxRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideServiceOrder(
	repository orderService.Repository,
	outbox orderService.Outbox,
	txManager orderService.TxManager,
	bulkLimit BulkConcurrency,
) *orderService.Order {
	return orderService.New(repository, outbox, txManager, int(bulkLimit))
}

func provideEventsGateway(producer sarama.SyncProducer, topic EventsTopic) *order_events.Gateway {
	return order_events.New(producer, string(topic))
}

func provideOutboxDispatcher(
	repository outboxService.Repository,
	publisher outboxService.Publisher,
	batchSize DispatchBatchSize,
) *outboxService.Dispatcher {
	return outboxService.New(repository, publisher, int(batchSize))
}

func provideDispatchInterval(cfg *config.Config) DispatchInterval {
	return DispatchInterval(cfg.Tasks.EventDispatchInterval)
}

func provideDispatchBatchSize(cfg *config.Config) DispatchBatchSize {
	return DispatchBatchSize(cfg.Tasks.EventDispatchBatchSize)
}

func provideBulkConcurrency(cfg *config.Config) BulkConcurrency {
	return BulkConcurrency(cfg.Bulk.ApproveConcurrency)
}

func provideEventsTopic(cfg *config.Config) EventsTopic {
	return EventsTopic(cfg.Kafka.EventsTopic)
}

func provideEventDispatchTask(
	log logger.Logger,
	dispatcher event_dispatch.Service,
	interval DispatchInterval,
) *event_dispatch.EventDispatch {
	return event_dispatch.NewEventDispatch(log, dispatcher, time.Duration(interval))
}

func provideTaskList(
	eventDispatchTask *event_dispatch.EventDispatch,
) []background.Task {
	return []background.Task{
		eventDispatchTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
