package grid

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/clock"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/utils"
)

// SimulatedSettler stands in for an on-chain settlement: it waits the
// configured confirmation delay and fabricates a transaction hash.
type SimulatedSettler struct {
	logger *zap.Logger
	delay  time.Duration
	sleep  func(context.Context, time.Duration) error
}

// NewSimulatedSettler builds a settler with the given confirmation delay.
func NewSimulatedSettler(logger *zap.Logger, delay time.Duration) *SimulatedSettler {
	return &SimulatedSettler{
		logger: logger.Named("settler"),
		delay:  delay,
		sleep:  clock.SleepWithContext,
	}
}

// Settle blocks for the settlement delay, then returns a fresh
// transaction reference. Canceling the context aborts the wait.
func (s *SimulatedSettler) Settle(ctx context.Context, from, action string) (string, error) {
	s.logger.Info("simulating transaction",
		zap.String("from", from),
		zap.String("action", action))

	if err := s.sleep(ctx, s.delay); err != nil {
		return "", err
	}

	ref := utils.NewTransactionRef()
	s.logger.Info("transaction confirmed", zap.String("tx_hash", ref))
	return ref, nil
}
