// Package metrics exposes prometheus counters for portal activity.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// PortalMetrics counts logins, registrations, bookings and uploads.
// A nil *PortalMetrics records nothing.
type PortalMetrics struct {
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	appointments  *prometheus.CounterVec
	documents     prometheus.Counter
	otpRequests   *prometheus.CounterVec
}

func NewPortalMetrics(reg prometheus.Registerer) *PortalMetrics {
	m := &PortalMetrics{
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "session",
			Name:      "logins_total",
			Help:      "Login attempts by role and outcome",
		}, []string{"role", "outcome"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "accounts",
			Name:      "registrations_total",
			Help:      "Accounts created by kind",
		}, []string{"kind"}),
		appointments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "appointments",
			Name:      "transitions_total",
			Help:      "Appointments entering each status",
		}, []string{"status"}),
		documents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "documents",
			Name:      "uploaded_total",
			Help:      "Documents attached to patient records",
		}),
		otpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "password_reset",
			Name:      "otp_requests_total",
			Help:      "Password reset codes requested by outcome",
		}, []string{"outcome"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.logins, m.registrations, m.appointments, m.documents, m.otpRequests)
	return m
}

func (m *PortalMetrics) ObserveLogin(role string, success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.logins.WithLabelValues(role, outcome).Inc()
}

func (m *PortalMetrics) ObserveRegistration(kind string) {
	if m == nil {
		return
	}
	m.registrations.WithLabelValues(kind).Inc()
}

func (m *PortalMetrics) ObserveAppointment(status string) {
	if m == nil {
		return
	}
	m.appointments.WithLabelValues(status).Inc()
}

func (m *PortalMetrics) ObserveDocument() {
	if m == nil {
		return
	}
	m.documents.Inc()
}

func (m *PortalMetrics) ObserveOTPRequest(outcome string) {
	if m == nil {
		return
	}
	m.otpRequests.WithLabelValues(outcome).Inc()
}
