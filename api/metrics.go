package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	simulationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "schedsim_simulations_total",
			Help: "Simulation requests by policy and outcome",
		},
		[]string{"policy", "status"},
	)

	simulatedMakespanTicks = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "schedsim_simulated_makespan_ticks",
			Help:    "Distribution of simulated timeline length in ticks",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	registry = prometheus.NewRegistry()
)

func init() {
	registry.MustRegister(simulationsTotal, simulatedMakespanTicks)
}

func observeSimulation(policy, status string, makespan int) {
	simulationsTotal.WithLabelValues(policy, status).Inc()
	if status == "ok" {
		simulatedMakespanTicks.Observe(float64(makespan))
	}
}

func metricsHandler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
