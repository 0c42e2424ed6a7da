package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SegmentsProcessed *prometheus.CounterVec
	NonFiniteResults  prometheus.Counter
	ComputeSeconds    prometheus.Histogram
	ActiveWorkers     prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		SegmentsProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "measuring_segments_processed_total",
			Help: "Total number of processed segment measuring jobs.",
		}, []string{"status"}),
		NonFiniteResults: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "measuring_non_finite_results_total",
			Help: "Total number of segments whose computed length was NaN or infinite.",
		}),
		ComputeSeconds: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "measuring_compute_duration_seconds",
			Help:    "Duration of great-circle length computations.",
			Buckets: prometheus.DefBuckets,
		}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "measuring_active_workers",
			Help: "Current number of active workers processing segments.",
		}),
	}
}
