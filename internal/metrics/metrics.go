package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	// Lookups counts emoji lookups by result.
	Lookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emojify_lookups_total",
			Help: "Total number of emoji lookups.",
		},
		[]string{"result"}, // hit, miss
	)

	// RenderRequests counts text substitution requests by status.
	RenderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "emojify_render_requests_total",
			Help: "Total number of render requests.",
		},
		[]string{"status"}, // success, bad_request, throttled
	)

	// DatasetRecords reports the number of records loaded per source kind.
	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "emojify_dataset_records",
			Help: "Number of emoji records loaded from the dataset.",
		},
		[]string{"source"},
	)
)

// StartServer starts the Prometheus metrics HTTP server.
func StartServer(addr string) {
	if addr == "" {
		log.Info().Msg("Metrics server address not configured, Prometheus endpoint will not be available.")
		return
	}

	mux := chi.NewRouter()
	mux.Handle("/metrics", promhttp.Handler())

	log.Info().Str("address", addr).Msg("Starting Prometheus metrics server")
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("Prometheus metrics server failed")
		}
	}()
}
