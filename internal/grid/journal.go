package grid

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/pkg/batcher"
)

// Journal batches accepted reports and writes them to the log as a
// settlement audit trail, decoupled from the request path.
type Journal struct {
	logger  *zap.Logger
	batcher *batcher.Batcher[model.SavingsReport]
}

// NewJournal builds a journal flushing by size or interval.
func NewJournal(logger *zap.Logger, flushSize int, flushInterval time.Duration) *Journal {
	logger = logger.Named("journal")
	j := &Journal{logger: logger}
	j.batcher = batcher.New(logger, j.flush, flushSize, flushInterval, 0)
	return j
}

// Start begins background flushing.
func (j *Journal) Start(ctx context.Context) {
	j.batcher.Start(ctx)
}

// Stop drains and stops background flushing.
func (j *Journal) Stop() {
	j.batcher.Stop()
}

// Add queues a report for journaling.
func (j *Journal) Add(ctx context.Context, report model.SavingsReport) error {
	return j.batcher.Add(ctx, report)
}

func (j *Journal) flush(_ context.Context, reports []model.SavingsReport) error {
	for _, r := range reports {
		j.logger.Info("savings report settled",
			zap.String("device_address", r.DeviceAddress),
			zap.Float64("watts", r.WattsSaved),
			zap.String("tx_hash", r.TransactionRef),
			zap.String("reward", r.Reward.String()))
	}
	return nil
}
