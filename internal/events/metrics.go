package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	published = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookshop",
			Subsystem: "order_events",
			Name:      "published_total",
			Help:      "Total number of order events published, by sink and result",
		},
		[]string{"sink", "result"},
	)

	queued = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "bookshop",
			Subsystem: "order_events",
			Name:      "queued",
			Help:      "Number of order events waiting for delivery, by sink",
		},
		[]string{"sink"},
	)

	subscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "bookshop",
			Subsystem: "order_events",
			Name:      "ws_subscribers",
			Help:      "Number of connected websocket subscribers",
		},
	)
)
