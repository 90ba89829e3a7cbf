package scanner

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/linksift/linksift/internal/classifier"
	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/patterns"
)

// linePass is one extraction strategy applied to a non-suppressed line.
// Passes run in priority order; the seen-set in the ScanContext guarantees
// a value found by an earlier pass is not re-emitted by a later one.
type linePass func(line string, lineNo int, view LineView, sc *ScanContext) []models.Url

// lineScanner drives the shared line walk: split on newlines, track the
// 1-based line index, fold the suppression state across lines, and isolate
// per-line failures so a single malformed line never aborts the rest of
// the document.
type lineScanner struct {
	logger      zerolog.Logger
	suppression func() *Suppression
	passes      []linePass
}

func (ls *lineScanner) Scan(content string) Output {
	sup := ls.suppression()
	sc := NewScanContext(sup)
	out := Output{Urls: []models.Url{}}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lineNo := i + 1
		urls, err := ls.scanLine(line, lineNo, sc)
		if err != nil {
			out.Errors = append(out.Errors, models.NewParseError(
				models.SeverityWarning,
				fmt.Sprintf("line %d could not be scanned and was skipped", lineNo),
				true,
				models.ActionSkip,
			))
			ls.logger.Warn().Int("line", lineNo).Err(err).Msg("Line scan failed, skipping line")
			continue
		}
		out.Urls = append(out.Urls, urls...)
	}
	return out
}

// scanLine runs every pass over one line, converting panics into errors at
// the line boundary.
func (ls *lineScanner) scanLine(line string, lineNo int, sc *ScanContext) (urls []models.Url, err error) {
	defer func() {
		if r := recover(); r != nil {
			urls = nil
			err = fmt.Errorf("panic while scanning line %d: %v", lineNo, r)
		}
	}()

	view := sc.suppression.Analyze(line)
	for _, pass := range ls.passes {
		urls = append(urls, pass(line, lineNo, view, sc)...)
	}
	return urls, nil
}

// newURL builds a token from a detected occurrence. The column is the
// zero-based match offset plus one; the context is the trimmed source line.
func newURL(value string, lineNo, start int, line string) models.Url {
	u := models.Url{
		Value:   value,
		Scheme:  classifier.Classify(value),
		Line:    lineNo,
		Column:  start + 1,
		Context: strings.TrimSpace(line),
	}
	if comps, ok := classifier.ExtractComponents(value); ok && comps.Scheme.IsWeb() {
		u.Host = comps.Host
		u.Path = comps.Path
	}
	return u
}

// plainTextPass matches the shared boundary vocabulary anywhere in the
// line. Boundary matches are accepted as-is: the grammar already enforces a
// recognized scheme prefix.
func plainTextPass(line string, lineNo int, view LineView, sc *ScanContext) []models.Url {
	var urls []models.Url
	for _, m := range patterns.FindAll(line) {
		if view.Suppressed(m.Start) {
			continue
		}
		if !sc.MarkSeen(m.Value) {
			continue
		}
		urls = append(urls, newURL(m.Value, lineNo, m.Start, line))
	}
	return urls
}

// capturePass extracts a capture group from every match of re and accepts
// it only when the classifier recognizes its scheme, rejecting javascript:,
// data:, and bare relative paths. group is the submatch index to take.
func capturePass(re *regexp.Regexp, group int) linePass {
	return func(line string, lineNo int, view LineView, sc *ScanContext) []models.Url {
		var urls []models.Url
		for _, loc := range re.FindAllStringSubmatchIndex(line, -1) {
			start, end := loc[2*group], loc[2*group+1]
			if start < 0 {
				continue
			}
			value := strings.TrimSpace(line[start:end])
			if value == "" || view.Suppressed(loc[0]) {
				continue
			}
			if !classifier.IsRecognized(value) {
				continue
			}
			if !sc.MarkSeen(value) {
				continue
			}
			urls = append(urls, newURL(value, lineNo, start, line))
		}
		return urls
	}
}
