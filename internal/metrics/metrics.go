package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymperday_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gymperday_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	ListingsCreatedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymperday_listings_created_total",
			Help: "Total number of gym listings registered",
		},
		[]string{"city"},
	)

	ListingsUpdatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymperday_listings_updated_total",
			Help: "Total number of gym listing edits",
		},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymperday_validation_failures_total",
			Help: "Total number of rejected listing submissions",
		},
		[]string{"field"},
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymperday_searches_total",
			Help: "Total number of city searches",
		},
		[]string{"city"},
	)

	LoginsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymperday_logins_total",
			Help: "Total number of logins by resolved destination",
		},
		[]string{"destination"},
	)

	PasswordResetsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gymperday_password_resets_total",
			Help: "Total number of password reset emails requested",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gymperday_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gymperday_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordListingCreated(city string) {
	ListingsCreatedTotal.WithLabelValues(city).Inc()
}

func RecordListingUpdated() {
	ListingsUpdatedTotal.Inc()
}

func RecordValidationFailure(field string) {
	ValidationFailuresTotal.WithLabelValues(field).Inc()
}

func RecordSearch(city string) {
	SearchesTotal.WithLabelValues(city).Inc()
}

func RecordLogin(destination string) {
	LoginsTotal.WithLabelValues(destination).Inc()
}

func RecordPasswordReset() {
	PasswordResetsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
