package reporter

import (
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linksift/linksift/internal/config"
	"github.com/linksift/linksift/internal/models"
)

func newTestHtmlReporter(t *testing.T) *HtmlReporter {
	cfg := config.NewDefaultReportConfig()
	cfg.OutputDir = t.TempDir()
	r, err := NewHtmlReporter(&cfg, zerolog.Nop())
	require.NoError(t, err)
	return r
}

func sampleResult() models.ExtractionResult {
	result := models.NewExtractionResult("markdown", []models.Url{
		{
			Value:   "https://example.com/docs",
			Scheme:  models.SchemeHTTPS,
			Host:    "example.com",
			Path:    "/docs",
			Line:    4,
			Column:  10,
			Context: "[docs](https://example.com/docs)",
		},
		{
			Value:   "mailto:team@example.com",
			Scheme:  models.SchemeMailto,
			Context: "root.contact",
		},
	})
	result.Errors = append(result.Errors, models.NewParseError(
		models.SeverityWarning, "line 9 could not be scanned and was skipped", true, models.ActionSkip))
	return result
}

func TestRenderReport(t *testing.T) {
	r := newTestHtmlReporter(t)

	path, err := r.Render("01REPORTSESSION", "docs/readme.md", sampleResult())
	require.NoError(t, err)
	require.FileExists(t, path)
	assert.True(t, strings.HasSuffix(path, "01REPORTSESSION.html"))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	require.NoError(t, err)

	assert.Equal(t, "01REPORTSESSION", doc.Find("#session-id").Text())

	rows := doc.Find("#url-table tbody tr")
	require.Equal(t, 2, rows.Length())

	firstLink := rows.First().Find("a")
	href, exists := firstLink.Attr("href")
	assert.True(t, exists)
	assert.Equal(t, "https://example.com/docs", href)
	assert.Equal(t, "https://example.com/docs", firstLink.Text())

	errorRows := doc.Find("#error-table tbody tr")
	require.Equal(t, 1, errorRows.Length())
	assert.Contains(t, errorRows.Text(), "skipped")
}

func TestRenderReportNoErrorsOmitsDiagnostics(t *testing.T) {
	r := newTestHtmlReporter(t)
	result := models.NewExtractionResult("json", nil)

	path, err := r.Render("01CLEANSESSION", "data.json", result)
	require.NoError(t, err)

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	doc, err := goquery.NewDocumentFromReader(file)
	require.NoError(t, err)
	assert.Zero(t, doc.Find("#error-table").Length())
	assert.Zero(t, doc.Find("#url-table tbody tr").Length())
}

func TestSchemeCounts(t *testing.T) {
	counts := schemeCounts(sampleResult().Urls)
	assert.Equal(t, 1, counts[models.SchemeHTTPS])
	assert.Equal(t, 1, counts[models.SchemeMailto])
}
