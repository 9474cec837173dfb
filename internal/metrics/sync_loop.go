package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pollsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aura",
		Subsystem: "sync_loop",
		Name:      "polls_total",
		Help:      "Count of grid status polls by outcome.",
	}, []string{"status"})

	pollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "aura",
		Subsystem: "sync_loop",
		Name:      "poll_duration_seconds",
		Help:      "Duration of grid status polls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// SyncLoop tracks client poll metrics.
type SyncLoop struct{}

// NewSyncLoop constructs a SyncLoop metrics recorder.
func NewSyncLoop() *SyncLoop {
	return &SyncLoop{}
}

// ObservePoll records one poll attempt outcome and duration.
func (SyncLoop) ObservePoll(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	pollsTotal.WithLabelValues(status).Inc()
	pollDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}
