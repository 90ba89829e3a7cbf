package rslimiter

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linksift/linksift/internal/config"
)

func TestCheckDisabledAlwaysPasses(t *testing.T) {
	cfg := config.LimiterConfig{Enabled: false, SystemMemThreshold: 0.000001}
	ml := NewMemoryLimiter(cfg, zerolog.Nop())
	assert.NoError(t, ml.Check())
}

func TestCheckFailsAboveThreshold(t *testing.T) {
	// A near-zero threshold is always exceeded on a running system.
	cfg := config.LimiterConfig{Enabled: true, SystemMemThreshold: 0.000001}
	ml := NewMemoryLimiter(cfg, zerolog.Nop())
	err := ml.Check()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds threshold")
}

func TestCheckPassesBelowThreshold(t *testing.T) {
	cfg := config.LimiterConfig{Enabled: true, SystemMemThreshold: 1.0}
	ml := NewMemoryLimiter(cfg, zerolog.Nop())
	assert.NoError(t, ml.Check())
}

func TestSnapshot(t *testing.T) {
	ml := NewMemoryLimiter(config.NewDefaultLimiterConfig(), zerolog.Nop())
	snapshot, err := ml.Snapshot()
	require.NoError(t, err)
	assert.Greater(t, snapshot.SystemTotalBytes, uint64(0))
	assert.Greater(t, snapshot.ProcessAllocBytes, uint64(0))
	assert.GreaterOrEqual(t, snapshot.SystemUsedPercent, 0.0)
}
