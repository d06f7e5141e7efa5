// Package metrics provides Prometheus metrics for the control-api service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TokensIssued tracks the total number of access tokens issued, by grant kind.
	TokensIssued = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_tokens_issued_total",
			Help: "Total number of LiveKit access tokens issued",
		},
		[]string{"grant"},
	)

	// TokenGenerationDuration tracks token signing time.
	TokenGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "control_token_generation_duration_seconds",
			Help:    "Duration of LiveKit token generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1},
		},
	)

	// AgentRegistrations tracks the number of live agent registrations.
	AgentRegistrations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "control_agent_registrations",
			Help: "Number of agent registrations currently held in the registry",
		},
	)

	// OrphanedRegistrations tracks registrations whose room is no longer live.
	OrphanedRegistrations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "control_agent_registrations_orphaned",
			Help: "Number of agent registrations whose room is not active on the platform",
		},
	)

	// PlatformCallDuration tracks the duration of LiveKit management API calls.
	PlatformCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "control_platform_call_duration_seconds",
			Help:    "Duration of LiveKit management API calls",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// PlatformCallErrors tracks errors from LiveKit management API calls.
	PlatformCallErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_platform_call_errors_total",
			Help: "Total number of failed LiveKit management API calls",
		},
		[]string{"operation"},
	)

	// WebhookEvents tracks received webhook events by kind.
	WebhookEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_webhook_events_total",
			Help: "Total number of webhook events received, by event kind",
		},
		[]string{"kind"},
	)

	// WebhookRejected tracks webhook deliveries that failed auth or verification.
	WebhookRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "control_webhook_rejected_total",
			Help: "Total number of rejected webhook deliveries",
		},
		[]string{"reason"},
	)

	// HTTPRequestDuration tracks HTTP request handling time.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "control_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint", "status"},
	)
)

// RecordTokenIssued records a successful token issuance.
func RecordTokenIssued(grant string, duration time.Duration) {
	TokensIssued.WithLabelValues(grant).Inc()
	TokenGenerationDuration.Observe(duration.Seconds())
}

// RecordPlatformCall records a LiveKit management API call outcome.
func RecordPlatformCall(operation string, duration time.Duration, err error) {
	PlatformCallDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		PlatformCallErrors.WithLabelValues(operation).Inc()
	}
}

// RecordWebhookEvent records a verified webhook event.
func RecordWebhookEvent(kind string) {
	WebhookEvents.WithLabelValues(kind).Inc()
}

// RecordRequest records an HTTP request.
func RecordRequest(method, endpoint, status string, duration float64) {
	HTTPRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration)
}
