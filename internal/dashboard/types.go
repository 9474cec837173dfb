// Package dashboard holds the client half of the grid event lifecycle:
// status polling and reconciliation, the transaction ledger, the
// rolling consumption series and the auto-responder.
package dashboard

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// StatusFetcher reads the server's grid status.
	StatusFetcher interface {
		FetchStatus(ctx context.Context) (model.GridState, error)
	}

	// SavingsReporter submits a proof-of-saving for one device.
	SavingsReporter interface {
		ReportSavings(ctx context.Context, deviceAddress string, watts float64) (ReportResult, error)
	}

	// PollMetrics observes poll outcomes.
	PollMetrics interface {
		ObservePoll(err error, started time.Time)
	}
)

// ReportResult is the client-facing slice of a savings report response.
type ReportResult struct {
	TransactionRef string
	Reward         decimal.Decimal
	GridStatus     model.GridStatus
}
