package grid

import (
	"context"
	"time"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Settler simulates the external ledger confirmation a real
	// deployment would wait on. Settle blocks for the settlement delay
	// and returns the transaction reference.
	Settler interface {
		Settle(ctx context.Context, from, action string) (string, error)
	}

	// EventResolver is the slice of the state machine the report
	// processor depends on: a consistent read plus the resolve
	// transition that closes the active event.
	EventResolver interface {
		Status() model.GridState
		Resolve() bool
	}

	// ReportSink receives accepted reports for asynchronous journaling.
	ReportSink interface {
		Add(ctx context.Context, report model.SavingsReport) error
	}

	// StateMachineMetrics observes grid event transitions.
	StateMachineMetrics interface {
		ObserveTrigger(bountyPerWatt int64, duration time.Duration)
		ObserveExpiry(applied bool)
		ObserveResolve()
	}

	// ReportMetrics observes savings report processing outcomes.
	ReportMetrics interface {
		ObserveReport(err error, started time.Time)
	}
)
