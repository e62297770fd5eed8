// Package metrics exposes Prometheus collectors for the contact service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes recorded by ObserveSubmission.
const (
	OutcomeSent          = "sent"
	OutcomeInvalidBody   = "invalid_body"
	OutcomeMissingFields = "missing_fields"
	OutcomeInvalidEmail  = "invalid_email"
	OutcomeNotConfigured = "not_configured"
	OutcomeSendFailed    = "send_failed"
)

// Metrics holds the service collectors on their own registry so several
// servers (and tests) can coexist in one process.
type Metrics struct {
	registry     *prometheus.Registry
	reqDuration  *prometheus.HistogramVec
	submissions  *prometheus.CounterVec
	sendDuration *prometheus.HistogramVec
}

// New creates and registers the collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		reqDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests.",
				Buckets: []float64{0.01, 0.1, 0.3, 1.2, 5},
			},
			[]string{"path", "method", "status"},
		),
		submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contact_submissions_total",
				Help: "Contact form submissions by outcome.",
			},
			[]string{"outcome"},
		),
		sendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "contact_email_send_duration_seconds",
				Help:    "Duration of email provider calls.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider", "result"},
		),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.reqDuration,
		m.submissions,
		m.sendDuration,
	)
	return m
}

// ObserveSubmission counts one submission with the given outcome.
func (m *Metrics) ObserveSubmission(outcome string) {
	m.submissions.WithLabelValues(outcome).Inc()
}

// ObserveSend records the duration of one provider call.
func (m *Metrics) ObserveSend(provider string, err error, d time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.sendDuration.WithLabelValues(provider, result).Observe(d.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware records request durations labeled by chi route pattern so
// unmatched paths collapse into a single label value.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		path := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				path = pattern
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.reqDuration.WithLabelValues(path, r.Method, strconv.Itoa(status)).Observe(time.Since(start).Seconds())
	})
}
