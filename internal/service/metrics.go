package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Subsystem: "orders",
		Name:      "placed_total",
		Help:      "Total number of orders committed.",
	})

	ordersFailed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Subsystem: "orders",
		Name:      "failed_total",
		Help:      "Total number of order placements rolled back.",
	})

	itemsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Subsystem: "orders",
		Name:      "items_skipped_total",
		Help:      "Total number of order items dropped because of invalid data.",
	})

	cartClearFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "bookshop",
		Subsystem: "orders",
		Name:      "cart_clear_failures_total",
		Help:      "Total number of carts that could not be cleared after an order.",
	})
)
