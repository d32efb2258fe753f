package order_events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_published_total",
			Help: "Total number of order lifecycle events published to Kafka",
		},
		[]string{"event_type"},
	)

	EventsPublishFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_events_publish_failed_total",
			Help: "Total number of failed order event publish attempts",
		},
		[]string{"event_type"},
	)
)
