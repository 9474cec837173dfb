package grid

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/utils"
)

// Demo wallet identities carried over from the settlement simulation.
const (
	WalletAIAgent  = "0x1234567890123456789012345678901234567890"
	WalletOracle   = "0x0987654321098765432109876543210987654321"
	WalletContract = "0xABCDEF1234567890ABCDEF1234567890ABCDEF12"
)

// maxWattsSaved is the upper bound a single report may claim.
const maxWattsSaved = 10000

// fallbackRate prices savings reported outside an active event.
var fallbackRate = decimal.NewFromFloat(0.001)

// bountyScale converts 1e-18-scale bounty units to whole reward units.
var bountyScale = decimal.New(1, 18)

// Submission is a raw savings submission as decoded from the wire.
// Savings stays untyped so absence, wrong type and out-of-range values
// each fail with their own validation error.
type Submission struct {
	DeviceAddress string
	Savings       any
}

// Receipt is the successful outcome of a processed submission.
type Receipt struct {
	TransactionRef string
	WattsSaved     float64
	Reward         decimal.Decimal
	GridStatus     model.GridStatus
}

// ReportProcessor validates savings submissions, prices them against
// the active event, records them and resolves the event.
type ReportProcessor struct {
	logger   *zap.Logger
	resolver EventResolver
	settler  Settler
	ledger   *ReportLedger
	journal  ReportSink
	metrics  ReportMetrics
}

// NewReportProcessor wires the processor. journal and metrics may be nil.
func NewReportProcessor(
	logger *zap.Logger,
	resolver EventResolver,
	settler Settler,
	ledger *ReportLedger,
	journal ReportSink,
	metrics ReportMetrics,
) *ReportProcessor {
	return &ReportProcessor{
		logger:   logger.Named("reportProcessor"),
		resolver: resolver,
		settler:  settler,
		ledger:   ledger,
		journal:  journal,
		metrics:  metrics,
	}
}

// Process runs the full submission path: validation, simulated
// settlement, reward pricing, recording and event resolution.
// Validation failures mutate nothing.
func (p *ReportProcessor) Process(ctx context.Context, sub Submission) (Receipt, error) {
	started := time.Now()
	receipt, err := p.process(ctx, sub)
	if p.metrics != nil {
		p.metrics.ObserveReport(err, started)
	}
	return receipt, err
}

func (p *ReportProcessor) process(ctx context.Context, sub Submission) (Receipt, error) {
	watts, err := validate(sub)
	if err != nil {
		return Receipt{}, err
	}

	p.logger.Info("reporting savings",
		zap.String("device_address", sub.DeviceAddress),
		zap.Float64("watts", watts))

	action := fmt.Sprintf("submitProofOfSaving(%s, %g)", sub.DeviceAddress, watts)
	ref, err := p.settler.Settle(ctx, WalletOracle, action)
	if err != nil {
		return Receipt{}, fmt.Errorf("settle savings report: %w", err)
	}

	state := p.resolver.Status()
	reward := priceReward(watts, state.Event)

	report := model.SavingsReport{
		DeviceAddress:  sub.DeviceAddress,
		WattsSaved:     watts,
		Timestamp:      time.Now().UnixMilli(),
		TransactionRef: ref,
		Reward:         reward,
	}
	p.ledger.Append(report)
	if p.journal != nil {
		if jerr := p.journal.Add(ctx, report); jerr != nil {
			p.logger.Warn("report not journaled", zap.Error(jerr))
		}
	}

	// First accepted report closes the event in full.
	if state.Stressed() {
		p.resolver.Resolve()
	}

	return Receipt{
		TransactionRef: ref,
		WattsSaved:     watts,
		Reward:         reward,
		GridStatus:     p.resolver.Status().Status,
	}, nil
}

// priceReward applies the event bounty when one is active, else the
// flat fallback rate.
func priceReward(watts float64, event *model.ActiveEvent) decimal.Decimal {
	saved := decimal.NewFromFloat(watts)
	if event != nil {
		return saved.Mul(decimal.NewFromInt(event.BountyPerWatt)).Div(bountyScale)
	}
	return saved.Mul(fallbackRate)
}

// validate applies the submission checks in their specified order:
// presence, address format, amount bounds.
func validate(sub Submission) (float64, error) {
	if sub.DeviceAddress == "" || sub.Savings == nil {
		return 0, ErrMissingField
	}
	if !utils.IsHexAddress(sub.DeviceAddress) {
		return 0, ErrInvalidAddress
	}

	watts, ok := toFloat(sub.Savings)
	if !ok || math.IsNaN(watts) || watts <= 0 || watts > maxWattsSaved {
		return 0, ErrInvalidAmount
	}
	return watts, nil
}

// toFloat accepts the numeric types a JSON decode can produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
