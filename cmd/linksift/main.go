package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/linksift/linksift/internal/config"
	"github.com/linksift/linksift/internal/datastore"
	"github.com/linksift/linksift/internal/dispatcher"
	"github.com/linksift/linksift/internal/history"
	"github.com/linksift/linksift/internal/logger"
	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/postprocess"
	"github.com/linksift/linksift/internal/reporter"
	"github.com/linksift/linksift/internal/rslimiter"
	"github.com/linksift/linksift/internal/scanner"
)

func main() {
	flags := ParseFlags()

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile)
	if err != nil {
		log.Fatalf("[FATAL] Could not load global config using path '%s': %v", flags.GlobalConfigFile, err)
	}

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Fatalf("[FATAL] Could not initialize logger: %v", err)
	}

	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Fatal().Err(err).Msg("Configuration validation failed")
	}

	switch flags.Mode {
	case "extract":
		runExtract(flags, gCfg, zLogger)
	case "dedupe", "sort", "sortlen":
		runCleanup(flags, zLogger)
	case "sessions":
		runSessions(gCfg, zLogger)
	default:
		zLogger.Fatal().Str("mode", flags.Mode).Msg("Unknown mode, expected extract, dedupe, sort, sortlen, or sessions")
	}
}

func runExtract(flags AppFlags, gCfg *config.GlobalConfig, zLogger zerolog.Logger) {
	limiter := rslimiter.NewMemoryLimiter(gCfg.LimiterConfig, zLogger)
	if err := limiter.Check(); err != nil {
		zLogger.Warn().Err(err).Msg("Memory pressure is high, scan may be slow")
	}

	if !gCfg.EngineConfig.SafetyEnabled {
		zLogger.Fatal().Msg("Extraction is disabled by configuration (engine_config.safety_enabled)")
	}

	content, sourcePath, err := readInput(flags.InputFile)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not read input")
	}

	if warn := gCfg.EngineConfig.SizeWarningBytes; warn > 0 && len(content) > warn {
		zLogger.Warn().
			Int("content_bytes", len(content)).
			Int("warning_threshold", warn).
			Msg("Document is large, scan may take a while")
	}

	format := flags.Format
	if format == "" {
		format = formatFromExtension(sourcePath)
	}
	if format == "" {
		format = gCfg.EngineConfig.DefaultFormat
	}

	// Ctrl-C cancels the scan before it reaches the scanner.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionID := history.NewSessionID()
	startTime := time.Now()

	historyDB := openHistory(gCfg, zLogger)
	if historyDB != nil {
		defer historyDB.Close()
		if err := historyDB.RecordStart(sessionID, format, sourcePath, startTime); err != nil {
			zLogger.Warn().Err(err).Msg("Could not record session start")
		}
	}

	result := dispatcher.NewDispatcher(zLogger).Extract(ctx, content, format)

	zLogger.Info().
		Str("session_id", sessionID).
		Str("format", result.Format).
		Int("url_count", len(result.Urls)).
		Int("error_count", len(result.Errors)).
		Bool("success", result.Success).
		Msg("Extraction finished")

	if historyDB != nil {
		if previous, err := historyDB.LatestSession(sourcePath); err == nil {
			logComparison(gCfg, zLogger, previous.SessionID, result)
		}
		if err := historyDB.RecordCompletion(sessionID, time.Now(), len(result.Urls), len(result.Errors), result.Success); err != nil {
			zLogger.Warn().Err(err).Msg("Could not record session completion")
		}
	}

	if result.Success && gCfg.StorageConfig.ParquetBasePath != "" {
		store, err := datastore.NewParquetStore(&gCfg.StorageConfig, zLogger)
		if err != nil {
			zLogger.Error().Err(err).Msg("Could not initialize parquet store")
		} else if _, err := store.WriteSession(sessionID, sourcePath, result.Urls); err != nil {
			zLogger.Error().Err(err).Msg("Could not persist session records")
		}
	}

	if gCfg.ReportConfig.Enabled {
		htmlReporter, err := reporter.NewHtmlReporter(&gCfg.ReportConfig, zLogger)
		if err != nil {
			zLogger.Error().Err(err).Msg("Could not initialize HTML reporter")
		} else if _, err := htmlReporter.Render(sessionID, sourcePath, result); err != nil {
			zLogger.Error().Err(err).Msg("Could not render HTML report")
		}
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		zLogger.Fatal().Err(err).Msg("Could not encode result")
	}

	if !result.Success {
		os.Exit(1)
	}
}

func runCleanup(flags AppFlags, zLogger zerolog.Logger) {
	text, _, err := readInput(flags.InputFile)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not read input")
	}

	var cleaned string
	switch flags.Mode {
	case "dedupe":
		cleaned = postprocess.DedupeLines(text)
	case "sort":
		cleaned = postprocess.SortLines(text)
	case "sortlen":
		cleaned = postprocess.SortLinesByLength(text)
	}

	if flags.ShowPreview {
		patch := postprocess.PreviewCleanup(text, cleaned)
		if patch == "" {
			fmt.Fprintln(os.Stderr, "no changes")
			return
		}
		fmt.Print(patch)
		return
	}
	fmt.Print(cleaned)
}

func runSessions(gCfg *config.GlobalConfig, zLogger zerolog.Logger) {
	historyDB := openHistory(gCfg, zLogger)
	if historyDB == nil {
		zLogger.Fatal().Msg("History database is not configured")
	}
	defer historyDB.Close()

	entries, err := historyDB.ListSessions(50)
	if err != nil {
		zLogger.Fatal().Err(err).Msg("Could not list sessions")
	}
	for _, e := range entries {
		fmt.Printf("%s  %-10s  urls=%-6d errors=%-4d success=%-5t  %s\n",
			e.SessionID, e.Format, e.UrlCount, e.ErrorCount, e.Success, e.SourcePath)
	}
}

func openHistory(gCfg *config.GlobalConfig, zLogger zerolog.Logger) *history.DB {
	if !gCfg.HistoryConfig.Enabled || gCfg.HistoryConfig.SQLiteDBPath == "" {
		return nil
	}
	historyDB, err := history.NewDB(gCfg.HistoryConfig.SQLiteDBPath, zLogger)
	if err != nil {
		zLogger.Warn().Err(err).Msg("Could not open history database, continuing without history")
		return nil
	}
	return historyDB
}

// logComparison diffs the current result against the stored records of a
// previous session for the same source.
func logComparison(gCfg *config.GlobalConfig, zLogger zerolog.Logger, previousSessionID string, result models.ExtractionResult) {
	store, err := datastore.NewParquetStore(&gCfg.StorageConfig, zLogger)
	if err != nil {
		return
	}
	records, err := store.ReadSession(previousSessionID)
	if err != nil {
		return
	}
	comparison := postprocess.CompareSets(datastore.Urls(records), result.Urls)
	newCount, existingCount, oldCount := comparison.Counts()
	zLogger.Info().
		Str("previous_session_id", previousSessionID).
		Int("new", newCount).
		Int("existing", existingCount).
		Int("old", oldCount).
		Msg("Compared against previous session")
}

func readInput(inputFile string) (string, string, error) {
	if inputFile == "" {
		return "", "", fmt.Errorf("no input file given, use -input or -i")
	}
	if inputFile == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return "", "", fmt.Errorf("failed to read input file %s: %w", inputFile, err)
	}
	return string(data), inputFile, nil
}

func formatFromExtension(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return scanner.FormatHTML
	case ".md", ".markdown":
		return scanner.FormatMarkdown
	case ".css":
		return scanner.FormatCSS
	case ".js", ".mjs", ".jsx":
		return scanner.FormatJavaScript
	case ".ts", ".tsx":
		return scanner.FormatTypeScript
	case ".json":
		return scanner.FormatJSON
	case ".yaml", ".yml":
		return scanner.FormatYAML
	case ".xml", ".svg":
		return scanner.FormatXML
	case ".properties", ".env":
		return scanner.FormatProperties
	case ".toml":
		return scanner.FormatTOML
	case ".ini", ".cfg":
		return scanner.FormatINI
	default:
		return ""
	}
}
