package config

// GlobalConfig is the root configuration structure loaded from the YAML
// (or JSON) config file. Engine ceilings are deliberately not configurable;
// only host-facing behavior lives here.
type GlobalConfig struct {
	EngineConfig  EngineConfig  `json:"engine_config" yaml:"engine_config"`
	LogConfig     LogConfig     `json:"log_config" yaml:"log_config"`
	StorageConfig StorageConfig `json:"storage_config" yaml:"storage_config"`
	HistoryConfig HistoryConfig `json:"history_config" yaml:"history_config"`
	ReportConfig  ReportConfig  `json:"report_config" yaml:"report_config"`
	LimiterConfig LimiterConfig `json:"limiter_config" yaml:"limiter_config"`
}

// NewDefaultGlobalConfig creates a GlobalConfig with default values.
func NewDefaultGlobalConfig() *GlobalConfig {
	return &GlobalConfig{
		EngineConfig:  NewDefaultEngineConfig(),
		LogConfig:     NewDefaultLogConfig(),
		StorageConfig: NewDefaultStorageConfig(),
		HistoryConfig: NewDefaultHistoryConfig(),
		ReportConfig:  NewDefaultReportConfig(),
		LimiterConfig: NewDefaultLimiterConfig(),
	}
}
