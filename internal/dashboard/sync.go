package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/clock"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

// Rates projects grid status onto the displayed reward rate.
type Rates struct {
	Baseline float64
	Elevated float64
}

// Reconcile derives the next dashboard snapshot from a poll result.
// It is the single reconciliation path for both the interval loop and
// manual refresh. A poll error degrades to the NORMAL projection so
// the UI is never left indeterminate.
func Reconcile(prev model.DashboardSnapshot, state model.GridState, err error, rates Rates) model.DashboardSnapshot {
	next := prev
	if err == nil && state.Stressed() {
		next.GridStatus = model.DashboardStressed
		next.RewardRate = rates.Elevated
		next.EventActive = true
		return next
	}

	next.GridStatus = model.DashboardStable
	next.RewardRate = rates.Baseline
	next.EventActive = false
	return next
}

// SyncLoop polls the grid status on a fixed interval and reconciles
// each result into the local snapshot. A failed poll never stops the
// loop, and results of polls completing after Stop are discarded.
type SyncLoop struct {
	logger   *zap.Logger
	fetcher  StatusFetcher
	metrics  PollMetrics
	rates    Rates
	interval time.Duration

	mu       sync.Mutex
	stopped  bool
	cancel   context.CancelFunc
	snapshot model.DashboardSnapshot
	onChange func(model.DashboardSnapshot)
}

// NewSyncLoop builds the loop. initial seeds the snapshot; onChange,
// if non-nil, is invoked after every applied reconciliation.
func NewSyncLoop(
	logger *zap.Logger,
	fetcher StatusFetcher,
	metrics PollMetrics,
	rates Rates,
	interval time.Duration,
	initial model.DashboardSnapshot,
	onChange func(model.DashboardSnapshot),
) *SyncLoop {
	return &SyncLoop{
		logger:   logger.Named("syncLoop"),
		fetcher:  fetcher,
		metrics:  metrics,
		rates:    rates,
		interval: interval,
		snapshot: initial,
		onChange: onChange,
	}
}

// Run polls until the context is canceled or Stop is called. The first
// poll happens immediately. Always returns the stopping error of the
// underlying context.
func (s *SyncLoop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		cancel()
		return context.Canceled
	}
	s.cancel = cancel
	s.mu.Unlock()

	return clock.Every(ctx, s.interval, s.poll)
}

// Refresh performs one immediate poll outside the interval schedule,
// applying the result through the same reconciliation path.
func (s *SyncLoop) Refresh(ctx context.Context) {
	s.poll(ctx)
}

func (s *SyncLoop) poll(ctx context.Context) {
	started := time.Now()
	state, err := s.fetcher.FetchStatus(ctx)
	if s.metrics != nil {
		s.metrics.ObservePoll(err, started)
	}
	if err != nil {
		s.logger.Warn("grid status poll failed, falling back to normal projection", zap.Error(err))
	}
	s.apply(state, err)
}

// apply installs the reconciled snapshot unless the loop was stopped
// while the poll was in flight.
func (s *SyncLoop) apply(state model.GridState, err error) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	next := Reconcile(s.snapshot, state, err, s.rates)
	changed := next != s.snapshot
	s.snapshot = next
	onChange := s.onChange
	s.mu.Unlock()

	if changed && onChange != nil {
		onChange(next)
	}
}

// Stop halts polling and bars any in-flight result from being applied.
// Safe to call repeatedly and before Run.
func (s *SyncLoop) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.cancel != nil {
		s.cancel()
	}
}

// Snapshot returns the current reconciled state.
func (s *SyncLoop) Snapshot() model.DashboardSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}
