// Package metrics exposes Prometheus collectors for case records, case
// assembly and submissions.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RecordsCreated    prometheus.Counter
	CasesAssembled    *prometheus.CounterVec
	AssemblyFailures  prometheus.Counter
	Submissions       *prometheus.CounterVec
	SubmissionLatency prometheus.Histogram
	EventsPublished   *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RecordsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "casebridge_case_records_created_total",
			Help: "Local case records written",
		}),
		CasesAssembled: f.NewCounterVec(prometheus.CounterOpts{
			Name: "casebridge_cases_assembled_total",
			Help: "Case payloads assembled, by presence of card and recipient",
		}, []string{"has_card", "has_recipient"}),
		AssemblyFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "casebridge_case_assembly_failures_total",
			Help: "Orders that could not be assembled into a case",
		}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "casebridge_case_submissions_total",
			Help: "Create-case calls by outcome and failure category",
		}, []string{"outcome", "category"}),
		SubmissionLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "casebridge_case_submission_duration_seconds",
			Help:    "Latency of create-case calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "casebridge_submission_events_total",
			Help: "Submission outcome events by publish result",
		}, []string{"result"}),
	}
}

func (m *Metrics) IncRecordsCreated() {
	m.RecordsCreated.Inc()
}

func (m *Metrics) IncCaseAssembled(hasCard, hasRecipient bool) {
	m.CasesAssembled.WithLabelValues(strconv.FormatBool(hasCard), strconv.FormatBool(hasRecipient)).Inc()
}

func (m *Metrics) IncAssemblyFailure() {
	m.AssemblyFailures.Inc()
}

// ObserveSubmission records one create-case call. category is empty on
// success.
func (m *Metrics) ObserveSubmission(outcome, category string, d time.Duration) {
	m.Submissions.WithLabelValues(outcome, category).Inc()
	m.SubmissionLatency.Observe(d.Seconds())
}

func (m *Metrics) IncEventPublished(ok bool) {
	result := "ok"
	if !ok {
		result = "error"
	}
	m.EventsPublished.WithLabelValues(result).Inc()
}
