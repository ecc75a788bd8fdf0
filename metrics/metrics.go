// Package metrics counts algebra operations and written reports on a private
// Prometheus registry.
package metrics

import (
	"sort"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Recorder holds all lvlalg metrics.
type Recorder struct {
	registry *prometheus.Registry

	Operations     *prometheus.CounterVec
	ModuleDuration *prometheus.HistogramVec
	ReportsWritten *prometheus.CounterVec
}

// NewRecorder creates a Recorder with its own registry, so several recorders
// (one per test, say) never collide.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		Operations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvlalg_operations_total",
				Help: "Total number of algebra operations evaluated",
			},
			[]string{"module", "operation", "outcome"},
		),
		ModuleDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvlalg_module_duration_seconds",
				Help:    "Wall time of one interactive module run, operand input included",
				Buckets: prometheus.ExponentialBuckets(1e-6, 10, 7),
			},
			[]string{"module"},
		),
		ReportsWritten: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvlalg_reports_written_total",
				Help: "Total number of report files written",
			},
			[]string{"format"},
		),
	}
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Operation counts one evaluation of operation in module; err selects the outcome label.
func (r *Recorder) Operation(module, operation string, err error) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	r.Operations.WithLabelValues(module, operation, outcome).Inc()
}

// ModuleDone observes the time elapsed since start for module.
func (r *Recorder) ModuleDone(module string, start time.Time) {
	r.ModuleDuration.WithLabelValues(module).Observe(time.Since(start).Seconds())
}

// ReportWritten counts one report file in format.
func (r *Recorder) ReportWritten(format string) {
	r.ReportsWritten.WithLabelValues(format).Inc()
}

// Summary sums every counter family by name, e.g.
// {"lvlalg_operations_total": 12, "lvlalg_reports_written_total": 3}.
// Histograms contribute their sample count.
func (r *Recorder) Summary() (map[string]float64, error) {
	families, err := r.registry.Gather()
	if err != nil {
		return nil, err
	}

	out := make(map[string]float64, len(families))
	for _, mf := range families {
		var total float64
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
		out[mf.GetName()] = total
	}

	return out, nil
}

// SummaryKeys returns the metric names of s in sorted order.
func SummaryKeys(s map[string]float64) []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
