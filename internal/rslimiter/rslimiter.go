// Package rslimiter performs a system memory pre-check before batch runs,
// so a large scan is refused rather than pushing the host into swap.
package rslimiter

import (
	"fmt"
	"runtime"

	"github.com/linksift/linksift/internal/config"
	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v3/mem"
)

// MemoryLimiter checks system memory pressure before work starts.
type MemoryLimiter struct {
	cfg    config.LimiterConfig
	logger zerolog.Logger
}

// MemorySnapshot captures system and process memory at check time.
type MemorySnapshot struct {
	SystemUsedPercent float64
	SystemTotalBytes  uint64
	ProcessAllocBytes uint64
}

// NewMemoryLimiter creates a MemoryLimiter from configuration.
func NewMemoryLimiter(cfg config.LimiterConfig, logger zerolog.Logger) *MemoryLimiter {
	return &MemoryLimiter{
		cfg:    cfg,
		logger: logger.With().Str("component", "MemoryLimiter").Logger(),
	}
}

// Snapshot reads current memory usage from the OS and the Go runtime.
func (ml *MemoryLimiter) Snapshot() (MemorySnapshot, error) {
	vmStat, err := mem.VirtualMemory()
	if err != nil {
		return MemorySnapshot{}, fmt.Errorf("failed to read system memory stats: %w", err)
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	return MemorySnapshot{
		SystemUsedPercent: vmStat.UsedPercent,
		SystemTotalBytes:  vmStat.Total,
		ProcessAllocBytes: memStats.Alloc,
	}, nil
}

// Check returns an error when system memory usage already exceeds the
// configured threshold. Disabled limiter always passes.
func (ml *MemoryLimiter) Check() error {
	if !ml.cfg.Enabled {
		return nil
	}

	snapshot, err := ml.Snapshot()
	if err != nil {
		// Stat failure should not block the run, only the pre-check.
		ml.logger.Warn().Err(err).Msg("Memory pre-check skipped")
		return nil
	}

	thresholdPercent := ml.cfg.SystemMemThreshold * 100
	if snapshot.SystemUsedPercent >= thresholdPercent {
		ml.logger.Error().
			Float64("used_percent", snapshot.SystemUsedPercent).
			Float64("threshold_percent", thresholdPercent).
			Msg("System memory usage exceeds threshold")
		return fmt.Errorf("system memory usage %.1f%% exceeds threshold %.1f%%",
			snapshot.SystemUsedPercent, thresholdPercent)
	}

	ml.logger.Debug().
		Float64("used_percent", snapshot.SystemUsedPercent).
		Uint64("process_alloc_bytes", snapshot.ProcessAllocBytes).
		Msg("Memory pre-check passed")
	return nil
}
