// Package metrics holds the process-wide Prometheus instrumentation.
// The Metrics struct is constructed once and injected, so tests can use
// an isolated registry instead of the global default.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Parse path labels. The deterministic normalizer is the fast path; the
// generative extraction fallback is the slow path. Keeping them as
// separate counters makes fallback hit rates visible.
const (
	PathFast     = "fast"
	PathFallback = "fallback"
)

// Metrics bundles the counters exported by the service.
type Metrics struct {
	registry *prometheus.Registry

	// AnswerParses counts answer-parse attempts by path and outcome.
	AnswerParses *prometheus.CounterVec

	// LLMRequests counts generative backend calls by purpose and outcome.
	LLMRequests *prometheus.CounterVec

	// Submissions counts persisted submissions by correctness.
	Submissions *prometheus.CounterVec
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		registry: reg,
		AnswerParses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mathcoach",
			Name:      "answer_parses_total",
			Help:      "Answer parse attempts by path (fast/fallback) and outcome (hit/miss).",
		}, []string{"path", "outcome"}),
		LLMRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mathcoach",
			Name:      "llm_requests_total",
			Help:      "Generative backend calls by purpose and outcome (ok/error).",
		}, []string{"purpose", "outcome"}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mathcoach",
			Name:      "submissions_total",
			Help:      "Persisted submissions by correctness (correct/incorrect).",
		}, []string{"result"}),
	}

	reg.MustRegister(m.AnswerParses, m.LLMRequests, m.Submissions)
	return m
}

// Handler returns the HTTP handler serving this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// ObserveParse records one answer-parse attempt. Nil-safe so callers can
// run without instrumentation in tests.
func (m *Metrics) ObserveParse(path string, hit bool) {
	if m == nil {
		return
	}
	outcome := "hit"
	if !hit {
		outcome = "miss"
	}
	m.AnswerParses.WithLabelValues(path, outcome).Inc()
}

// ObserveLLMRequest records one generative backend call.
func (m *Metrics) ObserveLLMRequest(purpose string, ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.LLMRequests.WithLabelValues(purpose, outcome).Inc()
}

// ObserveSubmission records one persisted submission.
func (m *Metrics) ObserveSubmission(correct bool) {
	if m == nil {
		return
	}
	result := "correct"
	if !correct {
		result = "incorrect"
	}
	m.Submissions.WithLabelValues(result).Inc()
}
