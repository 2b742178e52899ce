package triggerlog

import (
	"context"

	"github.com/furfindr/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// MetricsRecorder forwards triggers to an inner Recorder and counts them in
// Prometheus. The counter is monotonic and is not touched by Reset.
type MetricsRecorder struct {
	inner    Recorder
	triggers *prometheus.CounterVec
	resets   prometheus.Counter
}

// NewMetricsRecorder wraps inner and registers its collectors with reg.
func NewMetricsRecorder(inner Recorder, reg prometheus.Registerer) (*MetricsRecorder, error) {
	m := &MetricsRecorder{
		inner: inner,
		triggers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adoption_rule_triggers_total",
				Help: "Total number of compatibility rule triggers",
			},
			[]string{"rule_id"},
		),
		resets: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "adoption_trigger_log_resets_total",
				Help: "Total number of trigger log resets",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.triggers, m.resets} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Record implements Recorder.
func (m *MetricsRecorder) Record(ruleID string) {
	m.triggers.WithLabelValues(ruleID).Inc()
	m.inner.Record(ruleID)
}

// RecordBatch implements BatchRecorder.
func (m *MetricsRecorder) RecordBatch(ruleIDs []string) {
	for _, id := range ruleIDs {
		m.triggers.WithLabelValues(id).Inc()
	}
	RecordAll(m.inner, ruleIDs)
}

// StatsContext implements StatsReader.
func (m *MetricsRecorder) StatsContext(ctx context.Context) (domain.TriggerStats, error) {
	return ReadStats(ctx, m.inner)
}

// Stats implements Recorder.
func (m *MetricsRecorder) Stats() domain.TriggerStats {
	return m.inner.Stats()
}

// Reset implements Recorder.
func (m *MetricsRecorder) Reset() {
	m.resets.Inc()
	m.inner.Reset()
}
