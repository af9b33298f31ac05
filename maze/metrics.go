package maze

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/mazegen/generator"
)

// Build outcomes recorded in the builds counter.
const (
	OutcomeOK          = "ok"
	OutcomeUnreachable = "unreachable"
	OutcomeError       = "error"
)

// Algorithm labels that are not algorithm names.
const (
	// CustomLabel marks builds from BuildGrid.
	CustomLabel = "custom"
	// UnknownLabel marks builds with an out-of-range Algorithm.
	UnknownLabel = "unknown"
)

// algorithmLabel keeps the algorithm label set bounded.
func algorithmLabel(a generator.Algorithm) string {
	if _, err := a.MarshalText(); err != nil {
		return UnknownLabel
	}
	return a.String()
}

// Metrics holds the Prometheus collectors of a Builder. A nil *Metrics
// records nothing.
type Metrics struct {
	// builds counts builds by algorithm and outcome
	builds *prometheus.CounterVec
	// duration tracks grid generation latency by algorithm
	duration *prometheus.HistogramVec
	// pathLength tracks the cell count of found paths
	pathLength prometheus.Histogram
	// unreachable counts path requests whose end could not be reached
	unreachable prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		builds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "mazegen_builds_total",
			Help: "Total maze builds by algorithm and outcome",
		}, []string{"algorithm", "outcome"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mazegen_generation_duration_seconds",
			Help:    "Grid generation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		}, []string{"algorithm"}),
		pathLength: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazegen_path_length_cells",
			Help:    "Number of cells on found paths",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}),
		unreachable: f.NewCounter(prometheus.CounterOpts{
			Name: "mazegen_unreachable_paths_total",
			Help: "Total path requests whose end was unreachable",
		}),
	}
}

func (m *Metrics) observeBuild(algorithm, outcome string) {
	if m == nil {
		return
	}
	m.builds.WithLabelValues(algorithm, outcome).Inc()
}

func (m *Metrics) observeGeneration(a generator.Algorithm, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(algorithmLabel(a)).Observe(d.Seconds())
}

func (m *Metrics) observePath(length int) {
	if m == nil {
		return
	}
	m.pathLength.Observe(float64(length))
}

func (m *Metrics) observeUnreachable() {
	if m == nil {
		return
	}
	m.unreachable.Inc()
}
