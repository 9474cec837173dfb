package grid

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

func TestJournal_FlushesQueuedReports(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	j := NewJournal(zap.New(core), 10, 20*time.Millisecond)

	ctx := context.Background()
	j.Start(ctx)

	require.NoError(t, j.Add(ctx, model.SavingsReport{DeviceAddress: testDevice, WattsSaved: 42}))
	j.Stop()

	entries := logs.FilterMessage("savings report settled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, testDevice, entries[0].ContextMap()["device_address"])
}

func TestSimulatedSettler_Settle(t *testing.T) {
	s := NewSimulatedSettler(zap.NewNop(), time.Millisecond)

	ref, err := s.Settle(context.Background(), WalletAIAgent, "triggerEvent(100, 300)")
	require.NoError(t, err)
	assert.Regexp(t, "^0x[0-9a-f]{64}$", ref)
}

func TestSimulatedSettler_CanceledContext(t *testing.T) {
	s := NewSimulatedSettler(zap.NewNop(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Settle(ctx, WalletOracle, "submitProofOfSaving(_, 1)")
	require.ErrorIs(t, err, context.Canceled)
}
