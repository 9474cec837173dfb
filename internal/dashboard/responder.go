package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/pkg/workerpool"
)

// usdcScale converts on-chain reward units to the USDC display scale
// the dashboard uses.
var usdcScale = decimal.NewFromInt(1000)

// AutoResponder submits savings reports for a fixed set of devices
// when a stress event is observed, recording each granted reward in
// the transaction ledger.
type AutoResponder struct {
	logger   *zap.Logger
	reporter SavingsReporter
	ledger   *Ledger
	devices  []string
	watts    float64
	workers  int
}

// NewAutoResponder wires the responder. watts is the savings each
// device claims per event.
func NewAutoResponder(logger *zap.Logger, reporter SavingsReporter, ledger *Ledger, devices []string, watts float64, workers int) *AutoResponder {
	if workers <= 0 {
		workers = 2
	}
	return &AutoResponder{
		logger:   logger.Named("responder"),
		reporter: reporter,
		ledger:   ledger,
		devices:  devices,
		watts:    watts,
		workers:  workers,
	}
}

// Respond reports savings for every configured device concurrently.
// Individual rejections are logged and skipped; only a canceled
// context aborts the fan-out.
func (a *AutoResponder) Respond(ctx context.Context) error {
	return workerpool.Process(ctx, a.workers, a.devices,
		func(ctx context.Context, device string) error {
			result, err := a.reporter.ReportSavings(ctx, device, a.watts)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				a.logger.Warn("savings report not accepted",
					zap.String("device", device), zap.Error(err))
				return nil
			}

			entry := a.ledger.AppendReward(result.Reward.Mul(usdcScale))
			a.logger.Info("reward granted",
				zap.String("device", device),
				zap.String("tx_hash", result.TransactionRef),
				zap.String("amount", entry.AmountLabel))
			return nil
		}, nil)
}
