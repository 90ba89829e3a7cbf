package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	assert.True(t, cfg.EngineConfig.SafetyEnabled)
	assert.Equal(t, DefaultFormatTag, cfg.EngineConfig.DefaultFormat)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultParquetBasePath, cfg.StorageConfig.ParquetBasePath)
	assert.Equal(t, DefaultSQLiteDBPath, cfg.HistoryConfig.SQLiteDBPath)
	assert.Equal(t, DefaultReportOutputDir, cfg.ReportConfig.OutputDir)
	assert.InDelta(t, DefaultSystemMemThreshold, cfg.LimiterConfig.SystemMemThreshold, 1e-9)
}

func TestValidateDefaultConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	assert.NoError(t, ValidateConfig(cfg))
}

func TestValidateRejectsBadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"
	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestValidateRejectsBadLogFormat(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogFormat = "xml"
	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateRejectsBadThreshold(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LimiterConfig.SystemMemThreshold = 1.5
	assert.Error(t, ValidateConfig(cfg))
}

func TestLoadGlobalConfigMissingFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	cfg, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfigYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log_config:
  log_level: debug
  log_format: json
engine_config:
  safety_enabled: true
  default_format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogConfig.LogLevel)
	assert.Equal(t, "json", cfg.LogConfig.LogFormat)
	assert.Equal(t, "json", cfg.EngineConfig.DefaultFormat)
	// Sections absent from the file keep their defaults.
	assert.Equal(t, DefaultParquetBasePath, cfg.StorageConfig.ParquetBasePath)
}

func TestLoadGlobalConfigJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"log_config": {"log_level": "warn"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogConfig.LogLevel)
}

func TestLoadGlobalConfigInvalidContentFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_config:\n  log_level: shouty\n"), 0644))

	_, err := LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestGetConfigPathEnvVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
	t.Setenv(EnvConfigPath, path)

	assert.Equal(t, path, GetConfigPath(""))
}

func TestGetConfigPathFlagWinsOverEnv(t *testing.T) {
	dir := t.TempDir()
	flagPath := filepath.Join(dir, "flag.yaml")
	envPath := filepath.Join(dir, "env.yaml")
	require.NoError(t, os.WriteFile(flagPath, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(envPath, []byte("{}"), 0644))
	t.Setenv(EnvConfigPath, envPath)

	assert.Equal(t, flagPath, GetConfigPath(flagPath))
}
