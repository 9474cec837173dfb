package model

// DashboardStatus is the display-facing projection of GridStatus.
type DashboardStatus string

const (
	DashboardStable   DashboardStatus = "Stable"
	DashboardStressed DashboardStatus = "Stressed"
)

// DashboardSnapshot is the derived state the dashboard renders. It is
// recomputed from each poll result, never stored server-side.
type DashboardSnapshot struct {
	CarbonIntensity float64         `json:"carbonIntensity"`
	RewardRate      float64         `json:"rewardRate"`
	GridStatus      DashboardStatus `json:"gridStatus"`
	PeakerAvoided   int             `json:"peakerAvoided"`
	EventActive     bool            `json:"eventActive"`
}

// EntryKind discriminates transaction ledger entries.
type EntryKind string

const (
	EntryReward     EntryKind = "Grid Balancing Reward"
	EntryWithdrawal EntryKind = "Withdrawal"
)

// EntryStatus is the confirmation state of a ledger entry. Rewards are
// created Verifying and flip to Confirmed exactly once; Completed is
// terminal and reserved for withdrawals.
type EntryStatus string

const (
	StatusVerifying EntryStatus = "Verifying..."
	StatusConfirmed EntryStatus = "Confirmed"
	StatusCompleted EntryStatus = "Completed"
)

// TransactionEntry is one client-side ledger row.
type TransactionEntry struct {
	ID                int64       `json:"id"`
	Kind              EntryKind   `json:"type"`
	AmountLabel       string      `json:"amount"`
	RelativeTimeLabel string      `json:"time"`
	Status            EntryStatus `json:"status"`
}

// SeriesPoint is one slot of the rolling consumption window.
type SeriesPoint struct {
	TimeLabel   string  `json:"time"`
	Consumption float64 `json:"consumption"`
}
