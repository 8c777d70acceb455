// Package prom exports borrow-cell lifecycle events as Prometheus metrics.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/NetPo4ki/go-rwcell/rwcell"
)

// Metrics is a Prometheus-backed rwcell.Observer. One Metrics value may be
// shared by any number of cells; samples are labeled by borrow mode only.
type Metrics struct {
	active     *prometheus.GaugeVec
	borrows    *prometheus.CounterVec
	contention *prometheus.CounterVec
}

// New builds a Metrics observer and registers its collectors on reg.
// A nil reg means prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		active: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "rwcell_borrows_active",
			Help: "Borrows currently outstanding, by mode.",
		}, []string{"mode"}),
		borrows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rwcell_borrows_total",
			Help: "Borrows acquired since process start, by mode.",
		}, []string{"mode"}),
		contention: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rwcell_contention_total",
			Help: "Borrow attempts that hit a discipline violation, by mode of the losing attempt.",
		}, []string{"mode"}),
	}
	reg.MustRegister(m.active, m.borrows, m.contention)
	return m
}

// Acquired records a successful borrow.
func (m *Metrics) Acquired(mode rwcell.Mode) {
	m.active.WithLabelValues(mode.String()).Inc()
	m.borrows.WithLabelValues(mode.String()).Inc()
}

// Released records a discharged borrow.
func (m *Metrics) Released(mode rwcell.Mode) {
	m.active.WithLabelValues(mode.String()).Dec()
}

// Contended records a violating borrow attempt. The process terminates
// right after this callback, so the sample is only observable through
// registries gathered synchronously (tests, crash handlers).
func (m *Metrics) Contended(mode rwcell.Mode) {
	m.contention.WithLabelValues(mode.String()).Inc()
}
