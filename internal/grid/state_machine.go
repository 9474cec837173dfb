// Package grid owns the process-wide grid event lifecycle: the
// NORMAL/STRESSED state machine and the savings report settlement path.
package grid

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/utils"
)

// StateMachine tracks grid status and the single active stress event.
// One instance is shared by every request handler; all transitions are
// serialized by the internal mutex.
type StateMachine struct {
	logger  *zap.Logger
	metrics StateMachineMetrics

	mu     sync.Mutex
	status model.GridStatus
	event  *model.ActiveEvent
	timer  *time.Timer
}

// NewStateMachine constructs a StateMachine in the NORMAL state.
func NewStateMachine(logger *zap.Logger, metrics StateMachineMetrics) *StateMachine {
	return &StateMachine{
		logger:  logger.Named("stateMachine"),
		metrics: metrics,
		status:  model.GridStatusNormal,
	}
}

// Trigger starts a stress event, replacing any event already active
// (last trigger wins). The expiry timer it schedules is keyed to the
// new event's identity and is a no-op once that event is gone.
func (m *StateMachine) Trigger(bountyPerWatt int64, duration time.Duration, transactionRef string) model.ActiveEvent {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.timer != nil {
		m.timer.Stop()
	}

	event := model.ActiveEvent{
		ID:             uuid.NewString(),
		BountyPerWatt:  bountyPerWatt,
		DurationSecs:   int64(duration / time.Second),
		StartTime:      time.Now().UnixMilli(),
		TransactionRef: transactionRef,
	}
	if event.TransactionRef == "" {
		event.TransactionRef = utils.NewTransactionRef()
	}

	m.status = model.GridStatusStressed
	m.event = &event
	m.timer = time.AfterFunc(duration, func() {
		m.expire(event.ID)
	})

	if m.metrics != nil {
		m.metrics.ObserveTrigger(bountyPerWatt, duration)
	}
	m.logger.Info("stress event triggered",
		zap.String("event_id", event.ID),
		zap.Int64("bounty_per_watt", bountyPerWatt),
		zap.Duration("duration", duration))

	return event
}

// expire returns the grid to NORMAL, but only if the event the timer
// was scheduled for is still the active one. A newer trigger or an
// earlier resolution makes the timer stale, and a stale timer must not
// clear an event it did not create.
func (m *StateMachine) expire(eventID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	applied := m.event != nil && m.event.ID == eventID
	if applied {
		m.logger.Info("event duration expired, returning to normal",
			zap.String("event_id", eventID))
		m.status = model.GridStatusNormal
		m.event = nil
		m.timer = nil
	}
	if m.metrics != nil {
		m.metrics.ObserveExpiry(applied)
	}
}

// Resolve unconditionally clears the active event and returns the grid
// to NORMAL. The first accepted savings report closes the event in
// full; there is no partial fulfillment accounting. Returns false if
// the grid was already NORMAL.
func (m *StateMachine) Resolve() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.status != model.GridStatusStressed {
		return false
	}

	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.logger.Info("savings reported, returning grid to normal")
	m.status = model.GridStatusNormal
	m.event = nil
	if m.metrics != nil {
		m.metrics.ObserveResolve()
	}
	return true
}

// Status returns the current state. The event is copied so callers can
// never mutate the machine's own record.
func (m *StateMachine) Status() model.GridState {
	m.mu.Lock()
	defer m.mu.Unlock()

	state := model.GridState{Status: m.status}
	if m.event != nil {
		event := *m.event
		state.Event = &event
	}
	return state
}
