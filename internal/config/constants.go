package config

// Default configuration values.
const (
	DefaultLogFormat     = "console"
	DefaultLogLevel      = "info"
	DefaultMaxLogBackups = 3
	DefaultMaxLogSizeMB  = 10

	DefaultSizeWarningBytes = 1_000_000
	DefaultFormatTag        = "markdown"

	DefaultParquetBasePath  = "data/records"
	DefaultCompressionCodec = "zstd"
	DefaultSQLiteDBPath     = "data/history.db"
	DefaultReportOutputDir  = "reports"

	DefaultSystemMemThreshold = 0.9
)

// EnvConfigPath overrides the config file search when set.
const EnvConfigPath = "LINKSIFT_CONFIG_PATH"
