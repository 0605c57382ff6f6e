package transport

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts calls, refreshes and session expirations. A nil *Metrics records nothing.
type Metrics struct {
	Requests    *prometheus.CounterVec
	Refreshes   *prometheus.CounterVec
	Retries     prometheus.Counter
	Expirations *prometheus.CounterVec
}

// NewMetrics creates and registers clinic client metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	ret := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "client",
			Name:      "requests_total",
			Help:      "Calls made through the authenticated transport by outcome.",
		}, []string{"outcome"}),
		Refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "client",
			Name:      "token_refreshes_total",
			Help:      "Access token refresh attempts by result.",
		}, []string{"result"}),
		Retries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "client",
			Name:      "retries_total",
			Help:      "Calls replayed with a refreshed access token.",
		}),
		Expirations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "clinic",
			Subsystem: "client",
			Name:      "session_expirations_total",
			Help:      "Sessions ended by unrecoverable authorization failures by cause.",
		}, []string{"cause"}),
	}
	if reg != nil {
		reg.MustRegister(ret.Requests, ret.Refreshes, ret.Retries, ret.Expirations)
	}
	return ret
}

func (m *Metrics) request(outcome Outcome) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(outcome.String()).Inc()
}

func (m *Metrics) refresh(err error) {
	if m == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "failed"
	}
	m.Refreshes.WithLabelValues(result).Inc()
}

func (m *Metrics) retry() {
	if m == nil {
		return
	}
	m.Retries.Inc()
}

func (m *Metrics) expire(cause error) {
	if m == nil {
		return
	}
	m.Expirations.WithLabelValues(causeLabel(cause)).Inc()
}

func causeLabel(cause error) string {
	switch {
	case errors.Is(cause, ErrNoRefreshToken):
		return "no_refresh_token"
	case errors.Is(cause, ErrRejectedAfterRefresh):
		return "rejected_after_refresh"
	}
	return "refresh_failed"
}
