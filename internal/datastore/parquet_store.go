// Package datastore persists extraction records as parquet files, one file
// per scan session, and reads prior sessions back for set comparison.
package datastore

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/rs/zerolog"

	"github.com/linksift/linksift/internal/common"
	"github.com/linksift/linksift/internal/config"
	"github.com/linksift/linksift/internal/models"
)

// ParquetStore writes and reads session record files under the configured
// base path.
type ParquetStore struct {
	config *config.StorageConfig
	logger zerolog.Logger
}

// NewParquetStore creates a new ParquetStore.
func NewParquetStore(cfg *config.StorageConfig, logger zerolog.Logger) (*ParquetStore, error) {
	if cfg == nil {
		return nil, common.NewValidationError("config", cfg, "storage config cannot be nil")
	}
	if cfg.ParquetBasePath == "" {
		return nil, common.NewValidationError("parquet_base_path", cfg.ParquetBasePath, "base path cannot be empty")
	}
	return &ParquetStore{
		config: cfg,
		logger: logger.With().Str("component", "ParquetStore").Logger(),
	}, nil
}

// WriteSession transforms the extracted URLs of one session into records
// and writes them to {base}/{sessionID}.parquet. Returns the file path.
func (ps *ParquetStore) WriteSession(sessionID, sourcePath string, urls []models.Url) (string, error) {
	if sessionID == "" {
		return "", common.NewValidationError("session_id", sessionID, "session id cannot be empty")
	}

	if err := os.MkdirAll(ps.config.ParquetBasePath, 0755); err != nil {
		return "", common.WrapErrorf(err, "failed to create record directory '%s'", ps.config.ParquetBasePath)
	}

	now := time.Now()
	records := make([]models.UrlRecord, 0, len(urls))
	for _, u := range urls {
		records = append(records, models.UrlRecord{
			SessionID:          sessionID,
			SourcePath:         sourcePath,
			Value:              u.Value,
			Scheme:             string(u.Scheme),
			Host:               u.Host,
			Path:               u.Path,
			Line:               int32(u.Line),
			Column:             int32(u.Column),
			Context:            u.Context,
			DiscoveryTimestamp: now,
		})
	}

	filePath := filepath.Join(ps.config.ParquetBasePath, sessionID+".parquet")
	file, err := os.Create(filePath)
	if err != nil {
		return "", common.WrapErrorf(err, "failed to create record file '%s'", filePath)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[models.UrlRecord](file, ps.compressionOption())
	if _, err := writer.Write(records); err != nil {
		return "", common.WrapErrorf(err, "failed to write %d records to '%s'", len(records), filePath)
	}
	if err := writer.Close(); err != nil {
		return "", common.WrapErrorf(err, "failed to finalize record file '%s'", filePath)
	}

	ps.logger.Info().
		Str("session_id", sessionID).
		Int("records", len(records)).
		Str("path", filePath).
		Msg("Session records written")
	return filePath, nil
}

// ReadSession loads the records of a prior session.
func (ps *ParquetStore) ReadSession(sessionID string) ([]models.UrlRecord, error) {
	filePath := filepath.Join(ps.config.ParquetBasePath, sessionID+".parquet")
	file, err := os.Open(filePath)
	if err != nil {
		return nil, common.WrapErrorf(err, "failed to open record file '%s'", filePath)
	}
	defer file.Close()

	reader := parquet.NewGenericReader[models.UrlRecord](file)
	defer reader.Close()

	var records []models.UrlRecord
	buffer := make([]models.UrlRecord, 256)
	for {
		n, readErr := reader.Read(buffer)
		records = append(records, buffer[:n]...)
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return nil, common.WrapErrorf(readErr, "failed to read records from '%s'", filePath)
		}
	}

	ps.logger.Debug().
		Str("session_id", sessionID).
		Int("records", len(records)).
		Msg("Session records loaded")
	return records, nil
}

// Urls converts stored records back into tokens for post-processing.
func Urls(records []models.UrlRecord) []models.Url {
	urls := make([]models.Url, 0, len(records))
	for _, r := range records {
		urls = append(urls, models.Url{
			Value:   r.Value,
			Scheme:  models.Scheme(r.Scheme),
			Host:    r.Host,
			Path:    r.Path,
			Line:    int(r.Line),
			Column:  int(r.Column),
			Context: r.Context,
		})
	}
	return urls
}

func (ps *ParquetStore) compressionOption() parquet.WriterOption {
	switch ps.config.CompressionCodec {
	case "gzip":
		return parquet.Compression(&parquet.Gzip)
	case "snappy":
		return parquet.Compression(&parquet.Snappy)
	case "uncompressed":
		return parquet.Compression(&parquet.Uncompressed)
	default:
		return parquet.Compression(&parquet.Zstd)
	}
}
