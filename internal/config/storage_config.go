package config

// StorageConfig defines where extraction records are persisted.
type StorageConfig struct {
	// ParquetBasePath is the directory parquet record files are written
	// under, one file per scan session.
	ParquetBasePath string `json:"parquet_base_path,omitempty" yaml:"parquet_base_path,omitempty"`
	// CompressionCodec selects the parquet page compression.
	CompressionCodec string `json:"compression_codec,omitempty" yaml:"compression_codec,omitempty" validate:"omitempty,oneof=zstd snappy gzip uncompressed"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		ParquetBasePath:  DefaultParquetBasePath,
		CompressionCodec: DefaultCompressionCodec,
	}
}

// HistoryConfig defines the scan-session history database.
type HistoryConfig struct {
	Enabled      bool   `json:"enabled" yaml:"enabled"`
	SQLiteDBPath string `json:"sqlite_db_path,omitempty" yaml:"sqlite_db_path,omitempty"`
}

// NewDefaultHistoryConfig creates default history configuration
func NewDefaultHistoryConfig() HistoryConfig {
	return HistoryConfig{
		Enabled:      true,
		SQLiteDBPath: DefaultSQLiteDBPath,
	}
}

// ReportConfig defines HTML report generation.
type ReportConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`
}

// NewDefaultReportConfig creates default report configuration
func NewDefaultReportConfig() ReportConfig {
	return ReportConfig{
		Enabled:   true,
		OutputDir: DefaultReportOutputDir,
	}
}

// LimiterConfig defines the batch-mode memory pre-check.
type LimiterConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// SystemMemThreshold warns when system memory usage exceeds this
	// fraction before a batch run starts.
	SystemMemThreshold float64 `json:"system_mem_threshold,omitempty" yaml:"system_mem_threshold,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// NewDefaultLimiterConfig creates default limiter configuration
func NewDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Enabled:            true,
		SystemMemThreshold: DefaultSystemMemThreshold,
	}
}
