package services

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/blogem/adminaudit/models"
)

// AuditMetrics counts change log outcomes. A nil *AuditMetrics records nothing.
type AuditMetrics struct {
	Logged  *prometheus.CounterVec
	Skipped *prometheus.CounterVec
	Failed  *prometheus.CounterVec
}

// NewAuditMetrics creates the audit counters and registers them when registerer is not nil
func NewAuditMetrics(registerer prometheus.Registerer) *AuditMetrics {
	m := &AuditMetrics{
		Logged: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adminaudit_changes_logged_total",
				Help: "Total number of change records written",
			},
			[]string{"action"},
		),
		Skipped: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adminaudit_changes_skipped_total",
				Help: "Total number of mutation events not logged, by reason",
			},
			[]string{"reason"},
		),
		Failed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "adminaudit_changes_failed_total",
				Help: "Total number of change log attempts that failed, by stage",
			},
			[]string{"stage"},
		),
	}

	if registerer != nil {
		registerer.MustRegister(m.Logged, m.Skipped, m.Failed)
	}

	return m
}

func (m *AuditMetrics) logged(action models.Action) {
	if m != nil {
		m.Logged.WithLabelValues(string(action)).Inc()
	}
}

func (m *AuditMetrics) skipped(reason SkipReason) {
	if m != nil {
		m.Skipped.WithLabelValues(string(reason)).Inc()
	}
}

func (m *AuditMetrics) failed(stage string) {
	if m != nil {
		m.Failed.WithLabelValues(stage).Inc()
	}
}
