package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/grid"
)

var (
	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aura",
		Subsystem: "report_processor",
		Name:      "reports_total",
		Help:      "Count of processed savings submissions by outcome.",
	}, []string{"outcome"})

	reportDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aura",
		Subsystem: "report_processor",
		Name:      "report_duration_seconds",
		Help:      "Duration of savings submission processing, settlement delay included.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// ReportProcessor tracks savings report processing metrics.
type ReportProcessor struct{}

// NewReportProcessor constructs a ReportProcessor metrics recorder.
func NewReportProcessor() *ReportProcessor {
	return &ReportProcessor{}
}

// ObserveReport records one submission outcome and its duration.
func (ReportProcessor) ObserveReport(err error, started time.Time) {
	outcome := reportOutcome(err)
	reportsTotal.WithLabelValues(outcome).Inc()
	reportDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}

func reportOutcome(err error) string {
	switch {
	case err == nil:
		return "accepted"
	case errors.Is(err, grid.ErrMissingField):
		return "missing_field"
	case errors.Is(err, grid.ErrInvalidAddress):
		return "invalid_address"
	case errors.Is(err, grid.ErrInvalidAmount):
		return "invalid_amount"
	default:
		return "error"
	}
}
