package model

import "github.com/shopspring/decimal"

// GridStatus is the process-wide grid state. Wire values match the
// original oracle contract simulation: "normal" and "STRESSED".
type GridStatus string

const (
	GridStatusNormal   GridStatus = "normal"
	GridStatusStressed GridStatus = "STRESSED"
)

// ActiveEvent describes the single in-flight stress event. Present iff
// the grid is STRESSED. ID is the identity token the expiry timer is
// validated against; a timer scheduled for an older ID must not fire.
type ActiveEvent struct {
	ID             string `json:"-"`
	BountyPerWatt  int64  `json:"bountyPerWatt"`
	DurationSecs   int64  `json:"duration"`
	StartTime      int64  `json:"startTime"`
	TransactionRef string `json:"txHash"`
}

// SavingsReport is an accepted proof-of-saving submission. Immutable
// once created.
type SavingsReport struct {
	DeviceAddress  string          `json:"deviceAddress"`
	WattsSaved     float64         `json:"savings"`
	Timestamp      int64           `json:"timestamp"`
	TransactionRef string          `json:"txHash"`
	Reward         decimal.Decimal `json:"reward"`
}

// GridState is a point-in-time read of the state machine.
type GridState struct {
	Status GridStatus
	Event  *ActiveEvent
}

// Stressed reports whether an event is currently active.
func (s GridState) Stressed() bool {
	return s.Status == GridStatusStressed && s.Event != nil
}
