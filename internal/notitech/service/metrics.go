package service

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Auth event names used as the "event" label.
const (
	EventRegister        = "register"
	EventLogin           = "login"
	EventResetCodeIssue  = "reset_code_issue"
	EventResetCodeVerify = "reset_code_verify"
	EventPasswordReset   = "password_reset"
	EventSecurityAnswer  = "security_answer"
	EventAdminReset      = "admin_reset"
)

// Metrics counts authentication events. A nil *Metrics records nothing.
type Metrics struct {
	events *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notitech_auth_events_total",
			Help: "Authentication and recovery events by outcome.",
		}, []string{"event", "outcome"}),
	}
	reg.MustRegister(m.events)
	return m
}

func (m *Metrics) observe(event string, err error) {
	if m == nil {
		return
	}
	m.events.WithLabelValues(event, outcome(err)).Inc()
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrServerError):
		return "error"
	default:
		return "rejected"
	}
}
