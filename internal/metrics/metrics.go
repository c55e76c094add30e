package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Room metrics
	RoomsOpen = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pairchat_rooms_open",
			Help: "Rooms currently open in the registry",
		},
	)

	RoomsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pairchat_rooms_created_total",
			Help: "Total rooms created",
		},
	)

	// Relay metrics
	MessagesRelayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pairchat_messages_relayed_total",
			Help: "Total subscriber deliveries on fan-out",
		},
	)

	MessagesDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pairchat_messages_dropped_total",
			Help: "Broadcasts dropped because the room was already gone",
		},
	)

	// Pairing metrics
	JoinsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pairchat_joins_rejected_total",
			Help: "Total join attempts rejected",
		},
		[]string{"reason"}, // "not_found" or "self_pairing"
	)
)
