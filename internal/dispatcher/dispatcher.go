// Package dispatcher is the engine's entry point: it resolves a format
// tag to a scanner, applies the pre-flight size ceiling and post-scan
// count governance, and packages the outcome as an ExtractionResult. It
// performs no I/O and holds no state between calls.
package dispatcher

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/scanner"
)

// Hard ceilings, independent of user configuration.
const (
	// MaxContentLength is the input character ceiling. Larger documents
	// are rejected before any scanner runs.
	MaxContentLength = 10_000_000
	// MaxUrlCount is the output token ceiling. Larger scan outputs are
	// truncated to exactly this many tokens, in scan order.
	MaxUrlCount = 50_000
)

// Dispatcher routes extraction calls to format scanners.
type Dispatcher struct {
	logger zerolog.Logger
}

// NewDispatcher creates a new dispatcher.
func NewDispatcher(logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger.With().Str("component", "Dispatcher").Logger(),
	}
}

// Extract scans the content with the scanner for formatTag and returns a
// result for any input, however malformed; it never returns an error or
// panics. Cancellation is cooperative and consulted at exactly two points:
// before the size check and immediately before the scanner runs. A scan
// already in progress always runs to completion.
func (d *Dispatcher) Extract(ctx context.Context, content, formatTag string) models.ExtractionResult {
	if ctx.Err() != nil {
		d.logger.Debug().Str("format", formatTag).Msg("Extraction cancelled before start")
		return models.NewFailedExtractionResult(scanner.FormatUnknown)
	}

	if len(content) > MaxContentLength {
		d.logger.Warn().
			Int("content_length", len(content)).
			Int("ceiling", MaxContentLength).
			Msg("Content exceeds size ceiling, refusing to scan")
		return models.NewFailedExtractionResult(formatTag, models.NewParseError(
			models.SeverityError,
			fmt.Sprintf("document is %d characters, above the %d character limit; split the document and retry", len(content), MaxContentLength),
			true,
			models.ActionUserAction,
		))
	}

	formatScanner, resolvedFormat := scanner.Resolve(formatTag, d.logger)

	if ctx.Err() != nil {
		d.logger.Debug().Str("format", resolvedFormat).Msg("Extraction cancelled before scan")
		return models.NewFailedExtractionResult(scanner.FormatUnknown)
	}

	output, panicked := d.runScanner(formatScanner, content, resolvedFormat)
	if panicked != nil {
		return models.NewFailedExtractionResult(resolvedFormat, models.NewParseError(
			models.SeverityError,
			fmt.Sprintf("the %s scanner failed unexpectedly and no URLs could be extracted; report this document if the problem persists", resolvedFormat),
			true,
			models.ActionAbort,
		))
	}

	result := models.NewExtractionResult(resolvedFormat, output.Urls)
	result.Errors = append(result.Errors, output.Errors...)

	if len(result.Urls) > MaxUrlCount {
		original := len(result.Urls)
		result.Urls = result.Urls[:MaxUrlCount]
		result.Errors = append(result.Errors, models.NewParseError(
			models.SeverityWarning,
			fmt.Sprintf("scan found %d URLs; output truncated to %d", original, MaxUrlCount),
			true,
			models.ActionTruncate,
		))
		d.logger.Warn().
			Int("found", original).
			Int("kept", MaxUrlCount).
			Msg("Scan output truncated at count ceiling")
	}

	d.logger.Debug().
		Str("format", resolvedFormat).
		Int("url_count", len(result.Urls)).
		Int("error_count", len(result.Errors)).
		Msg("Extraction completed")
	return result
}

// runScanner isolates whole-scanner panics; per-line failures are already
// handled inside the scanners, so these are expected to be rare. Partial
// results up to the panic point are discarded.
func (d *Dispatcher) runScanner(s scanner.Scanner, content, format string) (output scanner.Output, panicked error) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Str("format", format).
				Interface("panic", r).
				Msg("Scanner panicked, discarding partial results")
			panicked = fmt.Errorf("scanner panic: %v", r)
		}
	}()
	return s.Scan(content), nil
}
