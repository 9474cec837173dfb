// Package transport exposes the grid API over HTTP/JSON.
package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/grid"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
	"github.com/Autonomous-Utility-Response-Agent/Aura-website/pkg/safe"
)

// Default stress event parameters, used when the trigger request does
// not override them.
const (
	DefaultBountyPerWatt   = 100
	DefaultDurationSeconds = 300

	// maxDurationSeconds caps operator-supplied event durations at one day.
	maxDurationSeconds = 86400
)

// GridHandler serves the grid event lifecycle endpoints.
type GridHandler struct {
	logger    *zap.Logger
	machine   *grid.StateMachine
	processor *grid.ReportProcessor
	ledger    *grid.ReportLedger
	settler   grid.Settler
	actionRL  ratelimit.Limiter
}

// NewGridHandler wires the handler. actionsPerSecond throttles the two
// POST actions, simulating settlement throughput.
func NewGridHandler(
	logger *zap.Logger,
	machine *grid.StateMachine,
	processor *grid.ReportProcessor,
	ledger *grid.ReportLedger,
	settler grid.Settler,
	actionsPerSecond int,
) *GridHandler {
	rl := ratelimit.NewUnlimited()
	if actionsPerSecond > 0 {
		rl = ratelimit.New(actionsPerSecond)
	}
	return &GridHandler{
		logger:    logger.Named("transport"),
		machine:   machine,
		processor: processor,
		ledger:    ledger,
		settler:   settler,
		actionRL:  rl,
	}
}

// Register attaches the API routes.
func (h *GridHandler) Register(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.GET("/grid-status", h.GridStatus)
	r.POST("/simulate-stress-event", h.SimulateStressEvent)
	r.POST("/report-savings", h.ReportSavings)
	r.GET("/savings-history", h.SavingsHistory)
}

// Health reports server liveness and the demo wallet identities.
func (h *GridHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"wallets": gin.H{
			"aiAgent":  grid.WalletAIAgent,
			"oracle":   grid.WalletOracle,
			"contract": grid.WalletContract,
		},
		"contract": grid.WalletContract,
	})
}

// GridStatus returns the current grid state and active event, if any.
func (h *GridHandler) GridStatus(c *gin.Context) {
	state := h.machine.Status()
	c.JSON(http.StatusOK, gin.H{
		"status":      state.Status,
		"activeEvent": state.Event,
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
	})
}

type triggerRequest struct {
	BountyPerWatt int64 `json:"bountyPerWatt"`
	Duration      int64 `json:"duration"`
}

// SimulateStressEvent triggers a stress event, optionally overriding
// the default bounty and duration.
func (h *GridHandler) SimulateStressEvent(c *gin.Context) {
	h.actionRL.Take()

	req := triggerRequest{
		BountyPerWatt: DefaultBountyPerWatt,
		Duration:      DefaultDurationSeconds,
	}
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			failure(c, http.StatusBadRequest, "invalid trigger request body")
			return
		}
	}

	durationSecs, err := safe.Uint32(req.Duration)
	if err != nil || durationSecs == 0 || durationSecs > maxDurationSeconds {
		failure(c, http.StatusBadRequest, "duration must be between 1 and 86400 seconds")
		return
	}
	if req.BountyPerWatt <= 0 {
		failure(c, http.StatusBadRequest, "bountyPerWatt must be positive")
		return
	}

	h.logger.Info("triggering grid stress event",
		zap.Int64("bounty_per_watt", req.BountyPerWatt),
		zap.Uint32("duration_seconds", durationSecs))

	action := fmt.Sprintf("triggerEvent(%d, %d)", req.BountyPerWatt, durationSecs)
	ref, err := h.settler.Settle(c.Request.Context(), grid.WalletAIAgent, action)
	if err != nil {
		failure(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.machine.Trigger(req.BountyPerWatt, time.Duration(durationSecs)*time.Second, ref)

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Grid stress event triggered on-chain.",
		"transactionHash": ref,
		"bountyPerWatt":   req.BountyPerWatt,
		"duration":        durationSecs,
		"gridStatus":      model.GridStatusStressed,
	})
}

type savingsRequest struct {
	DeviceAddress string `json:"deviceAddress"`
	Savings       any    `json:"savings"`
}

// ReportSavings accepts a proof-of-saving submission.
func (h *GridHandler) ReportSavings(c *gin.Context) {
	h.actionRL.Take()

	var req savingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		failure(c, http.StatusBadRequest, grid.ErrMissingField.Error())
		return
	}

	receipt, err := h.processor.Process(c.Request.Context(), grid.Submission{
		DeviceAddress: req.DeviceAddress,
		Savings:       req.Savings,
	})
	if err != nil {
		status := http.StatusInternalServerError
		if grid.IsValidationError(err) {
			status = http.StatusBadRequest
		}
		failure(c, status, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"message":         "Proof submitted to oracle.",
		"transactionHash": receipt.TransactionRef,
		"deviceAddress":   req.DeviceAddress,
		"savings":         receipt.WattsSaved,
		"reward":          receipt.Reward.StringFixed(6),
		"rewardExact":     receipt.Reward,
		"gridStatus":      receipt.GridStatus,
	})
}

// SavingsHistory returns the most recent accepted reports, newest first.
func (h *GridHandler) SavingsHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reports": h.ledger.Recent(0),
	})
}

func failure(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
