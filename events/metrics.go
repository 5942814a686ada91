// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type busMetrics struct {
	eventsTotal    *prometheus.CounterVec
	subscribers    *prometheus.GaugeVec
	deliveryErrors *prometheus.CounterVec
}

func newBusMetrics(reg prometheus.Registerer) *busMetrics {
	factory := promauto.With(reg)
	return &busMetrics{
		eventsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quickly_vote_events_published_total",
			Help: "Notifications published, by type.",
		}, []string{"type"}),
		subscribers: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "quickly_vote_event_subscribers",
			Help: "Active subscribers, by type and kind.",
		}, []string{"type", "kind"}),
		deliveryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "quickly_vote_event_delivery_errors_total",
			Help: "Failed or dropped deliveries, by type and kind.",
		}, []string{"type", "kind"}),
	}
}
