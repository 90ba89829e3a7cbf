// Package reporter renders extraction results into standalone HTML reports.
package reporter

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"github.com/linksift/linksift/internal/config"
	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/postprocess"
	"github.com/rs/zerolog"
)

//go:embed templates/report.html.tmpl
var defaultTemplate embed.FS

const defaultReportTemplateName = "report.html.tmpl"

// HtmlReporter renders a self-contained HTML page for a scan session.
type HtmlReporter struct {
	cfg      *config.ReportConfig
	logger   zerolog.Logger
	template *template.Template
}

// ReportData is the data model passed to the report template.
type ReportData struct {
	SessionID   string
	SourcePath  string
	Format      string
	GeneratedAt string
	Urls        []models.Url
	SchemeCount map[models.Scheme]int
	Errors      []models.ParseError
	Success     bool
}

// NewHtmlReporter creates an HtmlReporter and parses the embedded template.
func NewHtmlReporter(cfg *config.ReportConfig, appLogger zerolog.Logger) (*HtmlReporter, error) {
	moduleLogger := appLogger.With().Str("component", "HtmlReporter").Logger()

	tmpl, err := template.New(defaultReportTemplateName).
		Funcs(templateFunctions()).
		ParseFS(defaultTemplate, "templates/"+defaultReportTemplateName)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded report template: %w", err)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = config.DefaultReportOutputDir
		moduleLogger.Debug().Str("default_dir", cfg.OutputDir).Msg("OutputDir not specified, using default")
	}

	return &HtmlReporter{
		cfg:      cfg,
		logger:   moduleLogger,
		template: tmpl,
	}, nil
}

// Render writes the report for one session and returns the generated file path.
func (r *HtmlReporter) Render(sessionID, sourcePath string, result models.ExtractionResult) (string, error) {
	if err := os.MkdirAll(r.cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report output directory %s: %w", r.cfg.OutputDir, err)
	}

	data := ReportData{
		SessionID:   sessionID,
		SourcePath:  sourcePath,
		Format:      result.Format,
		GeneratedAt: time.Now().Format(time.RFC1123),
		Urls:        result.Urls,
		SchemeCount: schemeCounts(result.Urls),
		Errors:      result.Errors,
		Success:     result.Success,
	}

	var buf bytes.Buffer
	if err := r.template.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute report template: %w", err)
	}

	outputPath := filepath.Join(r.cfg.OutputDir, sessionID+".html")
	if err := os.WriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write report file %s: %w", outputPath, err)
	}

	r.logger.Info().Str("report_path", outputPath).Int("url_count", len(result.Urls)).Msg("Report generated")
	return outputPath, nil
}

func schemeCounts(urls []models.Url) map[models.Scheme]int {
	counts := make(map[models.Scheme]int)
	for scheme, group := range postprocess.GroupByScheme(urls) {
		counts[scheme] = len(group)
	}
	return counts
}
