package dashboard

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

// Window selects how far back the transaction view reaches.
type Window string

const (
	Window1h  Window = "1h"
	Window24h Window = "24h"
	Window7d  Window = "7d"
	Window30d Window = "30d"
	WindowAll Window = "all"
)

// hourBound returns the window's bound in hours; ok is false for the
// unbounded window.
func (w Window) hourBound() (bound float64, ok bool) {
	switch w {
	case Window1h:
		return 1, true
	case Window24h:
		return 24, true
	case Window7d:
		return 7 * 24, true
	case Window30d:
		return 30 * 24, true
	default:
		return 0, false
	}
}

// Ledger is the client-side transaction store: newest entries at the
// head, time-window filtered views, and delayed reward confirmation.
type Ledger struct {
	logger       *zap.Logger
	confirmDelay time.Duration

	mu      sync.Mutex
	entries []model.TransactionEntry
	balance decimal.Decimal
	nextID  int64
}

// NewLedger builds an empty ledger. confirmDelay is how long a reward
// stays Verifying before flipping to Confirmed.
func NewLedger(logger *zap.Logger, confirmDelay time.Duration) *Ledger {
	return &Ledger{
		logger:       logger.Named("ledger"),
		confirmDelay: confirmDelay,
		nextID:       time.Now().UnixMilli(),
	}
}

// Seed loads pre-existing entries (newest first) without scheduling
// confirmations; their statuses are taken as-is.
func (l *Ledger) Seed(entries []model.TransactionEntry, balance decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, entries...)
	l.balance = balance
}

// AppendReward inserts a freshly granted reward at the head in the
// Verifying state and schedules exactly one transition to Confirmed
// after the confirmation delay, matched by id.
func (l *Ledger) AppendReward(amountUSDC decimal.Decimal) model.TransactionEntry {
	l.mu.Lock()

	l.nextID++
	entry := model.TransactionEntry{
		ID:                l.nextID,
		Kind:              model.EntryReward,
		AmountLabel:       fmt.Sprintf("+ %s USDC", amountUSDC.StringFixed(2)),
		RelativeTimeLabel: justNowLabel,
		Status:            model.StatusVerifying,
	}
	l.entries = append([]model.TransactionEntry{entry}, l.entries...)
	l.balance = l.balance.Add(amountUSDC)
	l.mu.Unlock()

	time.AfterFunc(l.confirmDelay, func() {
		l.Confirm(entry.ID)
	})

	l.logger.Info("reward recorded",
		zap.Int64("id", entry.ID),
		zap.String("amount", entry.AmountLabel))
	return entry
}

// AppendWithdrawal inserts a withdrawal entry, terminal from creation.
func (l *Ledger) AppendWithdrawal(amountUSDC decimal.Decimal) model.TransactionEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	entry := model.TransactionEntry{
		ID:                l.nextID,
		Kind:              model.EntryWithdrawal,
		AmountLabel:       fmt.Sprintf("- %s USDC", amountUSDC.StringFixed(2)),
		RelativeTimeLabel: justNowLabel,
		Status:            model.StatusCompleted,
	}
	l.entries = append([]model.TransactionEntry{entry}, l.entries...)
	l.balance = l.balance.Sub(amountUSDC)
	return entry
}

// Confirm flips the entry with the given id from Verifying to
// Confirmed. Entries in any other state, and unknown ids, are left
// untouched.
func (l *Ledger) Confirm(id int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.entries {
		if l.entries[i].ID != id {
			continue
		}
		if l.entries[i].Status != model.StatusVerifying {
			return false
		}
		l.entries[i].Status = model.StatusConfirmed
		l.logger.Info("transaction confirmed", zap.Int64("id", id))
		return true
	}
	return false
}

// FilterByWindow returns entries whose parsed elapsed time falls inside
// the window, preserving insertion order (newest first). WindowAll
// returns everything.
func (l *Ledger) FilterByWindow(w Window) []model.TransactionEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	bound, bounded := w.hourBound()
	if !bounded {
		out := make([]model.TransactionEntry, len(l.entries))
		copy(out, l.entries)
		return out
	}

	out := make([]model.TransactionEntry, 0, len(l.entries))
	for _, e := range l.entries {
		if ParseElapsedHours(e.RelativeTimeLabel) <= bound {
			out = append(out, e)
		}
	}
	return out
}

// Entry returns the entry with the given id.
func (l *Ledger) Entry(id int64) (model.TransactionEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.TransactionEntry{}, false
}

// Balance returns the running USDC balance.
func (l *Ledger) Balance() decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}
