package infrastructure

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"mailmerge.app/internal/ports"
)

// MergeMetricsCollector implements MergeMetrics with Prometheus collectors
// plus an in-process tally for the health endpoint.
type MergeMetricsCollector struct {
	Recipients   *prometheus.CounterVec
	SendDuration prometheus.Histogram
	Runs         *prometheus.CounterVec
	LastRun      *prometheus.GaugeVec

	registry *prometheus.Registry

	mu       sync.RWMutex
	outcomes map[string]int64
	runs     map[string]int64
	lastRun  time.Time
	now      func() time.Time
}

// NewMergeMetricsCollector registers the merge collectors on registry.
// A nil registry gets a fresh one so tests and CLI runs never touch the global default.
func NewMergeMetricsCollector(registry *prometheus.Registry) *MergeMetricsCollector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	factory := promauto.With(registry)

	return &MergeMetricsCollector{
		Recipients: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mailmerge_recipients_total",
				Help: "Recipients processed, by outcome",
			},
			[]string{"outcome"},
		),
		SendDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "mailmerge_send_duration_seconds",
				Help:    "Time spent handing one message to the SMTP server",
				Buckets: prometheus.DefBuckets,
			},
		),
		Runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mailmerge_runs_total",
				Help: "Merge runs, by result",
			},
			[]string{"result"},
		),
		LastRun: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "mailmerge_last_run_timestamp_seconds",
				Help: "Unix time of the last finished run, by result",
			},
			[]string{"result"},
		),
		registry: registry,
		outcomes: make(map[string]int64),
		runs:     make(map[string]int64),
		now:      time.Now,
	}
}

// Registry returns the registry the collectors live on
func (m *MergeMetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}

// RecordDelivery counts one recipient outcome. Skips carry no send duration.
func (m *MergeMetricsCollector) RecordDelivery(outcome string, duration time.Duration) {
	m.Recipients.WithLabelValues(outcome).Inc()
	if outcome != ports.OutcomeSkipped {
		m.SendDuration.Observe(duration.Seconds())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes[outcome]++
}

// RecordRun counts one finished run
func (m *MergeMetricsCollector) RecordRun(result string) {
	now := m.now()
	m.Runs.WithLabelValues(result).Inc()
	m.LastRun.WithLabelValues(result).Set(float64(now.Unix()))

	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs[result]++
	m.lastRun = now
}

// WriteTextfile dumps every registered metric in the node_exporter textfile format
func (m *MergeMetricsCollector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

// GetStats returns the in-process tally
func (m *MergeMetricsCollector) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := map[string]interface{}{
		"sent":      m.outcomes[ports.OutcomeSent],
		"failed":    m.outcomes[ports.OutcomeFailed],
		"skipped":   m.outcomes[ports.OutcomeSkipped],
		"completed": m.runs[ports.RunCompleted],
		"aborted":   m.runs[ports.RunAborted],
	}
	if !m.lastRun.IsZero() {
		stats["last_run"] = m.lastRun.Format(time.RFC3339)
	}
	return stats
}
