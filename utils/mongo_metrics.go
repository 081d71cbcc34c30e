package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.mongodb.org/mongo-driver/event"
)

var (
	MongoOpenConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_open_connections",
			Help: "Connections currently held by the MongoDB pool",
		},
	)

	MongoCheckedOutConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mongo_checked_out_connections",
			Help: "Pool connections currently in use by an operation",
		},
	)
)

// MongoPoolMonitor feeds the connection pool gauges from driver pool events.
func MongoPoolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{
		Event: func(evt *event.PoolEvent) {
			switch evt.Type {
			case event.ConnectionCreated:
				MongoOpenConnections.Inc()
			case event.ConnectionClosed:
				MongoOpenConnections.Dec()
			case event.GetSucceeded:
				MongoCheckedOutConnections.Inc()
			case event.ConnectionReturned:
				MongoCheckedOutConnections.Dec()
			}
		},
	}
}
