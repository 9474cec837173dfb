package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/clock"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/config"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/dashboard"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/metrics"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

var opts struct {
	ConfigPath string `long:"config" env:"DASHBOARD_AGENT_CONFIG" description:"path to the agent yaml config" default:"agent.yaml"`
}

// seedEntries is the demo transaction history shown before the agent
// earns anything itself.
func seedEntries() []model.TransactionEntry {
	return []model.TransactionEntry{
		{ID: 5, Kind: model.EntryReward, AmountLabel: "+ 0.05 USDC", RelativeTimeLabel: "30 minutes ago", Status: model.StatusConfirmed},
		{ID: 4, Kind: model.EntryReward, AmountLabel: "+ 0.11 USDC", RelativeTimeLabel: "2 hours ago", Status: model.StatusConfirmed},
		{ID: 3, Kind: model.EntryReward, AmountLabel: "+ 0.21 USDC", RelativeTimeLabel: "1 day ago", Status: model.StatusConfirmed},
		{ID: 2, Kind: model.EntryWithdrawal, AmountLabel: "- 20.00 USDC", RelativeTimeLabel: "2 days ago", Status: model.StatusCompleted},
		{ID: 1, Kind: model.EntryReward, AmountLabel: "+ 0.38 USDC", RelativeTimeLabel: "3 days ago", Status: model.StatusConfirmed},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&opts, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", opts.ConfigPath), zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("dashboard agent failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	client := dashboard.NewClient(cfg.API.BaseURL, cfg.API.Timeout)

	ledger := dashboard.NewLedger(logger, cfg.Ledger.ConfirmDelay)
	ledger.Seed(seedEntries(), cfg.Ledger.InitialBalanceDecimal())

	responder := dashboard.NewAutoResponder(
		logger,
		client,
		ledger,
		cfg.Responder.Devices,
		cfg.Responder.Watts,
		cfg.Responder.Workers,
	)

	series := dashboard.NewSeriesBuffer(nil)

	initial := model.DashboardSnapshot{
		CarbonIntensity: float64(cfg.Poll.CarbonIntensity),
		RewardRate:      cfg.Poll.BaselineRate,
		GridStatus:      model.DashboardStable,
		PeakerAvoided:   cfg.Poll.PeakerAvoided,
	}

	// Kick off one responder pass per transition into the stressed
	// state; steady-state stressed polls don't re-trigger it.
	var respondMu sync.Mutex
	eventSeen := false
	onChange := func(snap model.DashboardSnapshot) {
		respondMu.Lock()
		fire := snap.EventActive && !eventSeen
		eventSeen = snap.EventActive
		respondMu.Unlock()
		if !fire {
			return
		}
		go func() {
			if err := responder.Respond(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("auto response failed", zap.Error(err))
			}
			logger.Info("balance after response",
				zap.String("usdc", ledger.Balance().Round(2).String()))
		}()
	}

	loop := dashboard.NewSyncLoop(
		logger,
		client,
		metrics.NewSyncLoop(),
		dashboard.Rates{Baseline: cfg.Poll.BaselineRate, Elevated: cfg.Poll.ElevatedRate},
		cfg.Poll.Interval,
		initial,
		onChange,
	)
	defer loop.Stop()

	go func() {
		_ = clock.Every(ctx, cfg.Series.TickInterval, func(context.Context) {
			series.Tick()
		})
	}()

	logger.Info("dashboard agent started",
		zap.String("api", cfg.API.BaseURL),
		zap.Int("devices", len(cfg.Responder.Devices)),
		zap.String("balance", ledger.Balance().String()))

	return loop.Run(ctx)
}
