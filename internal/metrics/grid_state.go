package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsTriggeredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aura",
		Subsystem: "grid_state",
		Name:      "events_triggered_total",
		Help:      "Count of stress events triggered.",
	})

	eventBountyPerWatt = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "aura",
		Subsystem: "grid_state",
		Name:      "event_bounty_per_watt",
		Help:      "Bounty per watt of triggered events, in 1e-18 scale units.",
		Buckets:   prometheus.ExponentialBuckets(1, 10, 8),
	})

	eventDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "aura",
		Subsystem: "grid_state",
		Name:      "event_duration_seconds",
		Help:      "Scheduled duration of triggered events.",
		Buckets:   prometheus.ExponentialBuckets(30, 2, 10),
	})

	eventExpiriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "aura",
		Subsystem: "grid_state",
		Name:      "event_expiries_total",
		Help:      "Count of expiry timer firings, split by whether they applied or were stale.",
	}, []string{"outcome"})

	eventResolutionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "aura",
		Subsystem: "grid_state",
		Name:      "event_resolutions_total",
		Help:      "Count of events resolved by an accepted savings report.",
	})
)

// GridState tracks state machine transition metrics.
type GridState struct{}

// NewGridState constructs a GridState metrics recorder.
func NewGridState() *GridState {
	return &GridState{}
}

// ObserveTrigger records a triggered event and its parameters.
func (GridState) ObserveTrigger(bountyPerWatt int64, duration time.Duration) {
	eventsTriggeredTotal.Inc()
	eventBountyPerWatt.Observe(float64(bountyPerWatt))
	eventDurationSeconds.Observe(duration.Seconds())
}

// ObserveExpiry records an expiry timer firing; applied is false when
// the identity guard rejected a stale timer.
func (GridState) ObserveExpiry(applied bool) {
	outcome := "applied"
	if !applied {
		outcome = "stale"
	}
	eventExpiriesTotal.WithLabelValues(outcome).Inc()
}

// ObserveResolve records an event closed by a savings report.
func (GridState) ObserveResolve() {
	eventResolutionsTotal.Inc()
}
