package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glowbook_api_requests_total",
			Help: "Total number of requests issued to the booking backend",
		},
		[]string{"endpoint", "method"},
	)

	APIRequestFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glowbook_api_request_failures_total",
			Help: "Total number of failed backend requests by error class",
		},
		[]string{"endpoint", "class"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "glowbook_api_request_duration_seconds",
			Help: "Duration of backend requests in seconds",
		},
		[]string{"endpoint"},
	)

	PushEventsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glowbook_push_events_applied_total",
			Help: "Total number of push channel events applied to the local store",
		},
		[]string{"event"},
	)

	PushReconnects = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glowbook_push_reconnects_total",
			Help: "Total number of push channel reconnect attempts",
		},
	)

	RelayEmailsSent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "glowbook_relay_emails_sent_total",
			Help: "Total number of emails accepted by the provider",
		},
	)

	RelayEmailsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "glowbook_relay_emails_rejected_total",
			Help: "Total number of relay requests rejected before send",
		},
		[]string{"reason"},
	)
)
