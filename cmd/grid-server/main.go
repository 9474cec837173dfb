package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/grid"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/metrics"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/transport"
)

var config struct {
	Addr                 string        `long:"addr" env:"GRID_SERVER_ADDR" description:"listen addr" default:":3001"`
	SettleDelay          time.Duration `long:"settle-delay" env:"GRID_SERVER_SETTLE_DELAY" description:"simulated settlement latency" default:"500ms"`
	ActionsPerSecond     int           `long:"actions-per-sec" env:"GRID_SERVER_ACTIONS_PER_SEC" description:"rate limit for POST actions, 0 for unlimited" default:"25"`
	JournalFlushSize     int           `long:"journal-flush-size" env:"GRID_SERVER_JOURNAL_FLUSH_SIZE" description:"journal batch size" default:"16"`
	JournalFlushInterval time.Duration `long:"journal-flush-interval" env:"GRID_SERVER_JOURNAL_FLUSH_INTERVAL" description:"journal flush interval" default:"5s"`
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

	if err := godotenv.Load(".env.local"); err != nil && !os.IsNotExist(err) {
		logger.Warn("failed to load .env.local", zap.Error(err))
	}
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	machine := grid.NewStateMachine(logger, metrics.NewGridState())
	settler := grid.NewSimulatedSettler(logger, config.SettleDelay)
	ledger := grid.NewReportLedger()

	journal := grid.NewJournal(logger, config.JournalFlushSize, config.JournalFlushInterval)
	journal.Start(ctx)
	defer journal.Stop()

	processor := grid.NewReportProcessor(
		logger,
		machine,
		settler,
		ledger,
		journal,
		metrics.NewReportProcessor(),
	)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(transport.RequestLogger(logger), transport.Recovery(logger))
	transport.NewGridHandler(logger, machine, processor, ledger, settler, config.ActionsPerSecond).Register(router)

	mux := http.NewServeMux()
	mux.Handle("/", router)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              config.Addr,
		Handler:           cors.Default().Handler(mux),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the http server")
		if err := s.Shutdown(context.Background()); err != nil {
			logger.Error("Failed to shutdown http server", zap.Error(err))
		}
	}()

	logger.Info("Starting HTTP server", zap.String("addr", config.Addr))
	if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to listen and serve", zap.Error(err))
	}
}
