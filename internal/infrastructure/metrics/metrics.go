package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the warranty flow collectors. A nil *Metrics records nothing.
type Metrics struct {
	StageTransitions       *prometheus.CounterVec
	AutomationStepFailures *prometheus.CounterVec
	SLAAlerts              *prometheus.CounterVec
	OutboxCoalesced        prometheus.Counter
	SweepDuration          prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StageTransitions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "warranty_stage_transitions_total",
			Help: "Warranty stage transitions by origin, target and result.",
		}, []string{"from", "to", "result"}),
		AutomationStepFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "warranty_automation_step_failures_total",
			Help: "Best-effort automation steps that failed.",
		}, []string{"step"}),
		SLAAlerts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "warranty_sla_alerts_total",
			Help: "SLA alerts emitted by the sweep.",
		}, []string{"kind"}),
		OutboxCoalesced: f.NewCounter(prometheus.CounterOpts{
			Name: "warranty_snapshot_outbox_coalesced_total",
			Help: "Request snapshots superseded by a newer one before being saved.",
		}),
		SweepDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "warranty_sla_sweep_duration_seconds",
			Help:    "Duration of SLA sweeps.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) ObserveTransition(from, to, result string) {
	if m == nil {
		return
	}
	m.StageTransitions.WithLabelValues(from, to, result).Inc()
}

func (m *Metrics) ObserveStepFailure(step string) {
	if m == nil {
		return
	}
	m.AutomationStepFailures.WithLabelValues(step).Inc()
}

func (m *Metrics) ObserveSLAAlert(kind string) {
	if m == nil {
		return
	}
	m.SLAAlerts.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveOutboxCoalesced() {
	if m == nil {
		return
	}
	m.OutboxCoalesced.Inc()
}

func (m *Metrics) ObserveSweep(started time.Time) {
	if m == nil {
		return
	}
	m.SweepDuration.Observe(time.Since(started).Seconds())
}
