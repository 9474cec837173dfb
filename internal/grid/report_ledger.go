package grid

import (
	"sync"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

// defaultHistoryLimit bounds how many reports a history read returns.
const defaultHistoryLimit = 20

// ReportLedger is the in-memory append-only store of accepted savings
// reports. Records are never mutated or deleted.
type ReportLedger struct {
	mu      sync.Mutex
	reports []model.SavingsReport
}

// NewReportLedger constructs an empty ledger.
func NewReportLedger() *ReportLedger {
	return &ReportLedger{}
}

// Append records an accepted report.
func (l *ReportLedger) Append(report model.SavingsReport) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reports = append(l.reports, report)
}

// Recent returns up to limit of the latest reports, newest first. A
// non-positive limit falls back to the default of 20.
func (l *ReportLedger) Recent(limit int) []model.SavingsReport {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	n := len(l.reports)
	if n > limit {
		n = limit
	}
	out := make([]model.SavingsReport, 0, n)
	for i := len(l.reports) - 1; i >= len(l.reports)-n; i-- {
		out = append(out, l.reports[i])
	}
	return out
}

// Len returns the number of recorded reports.
func (l *ReportLedger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.reports)
}
