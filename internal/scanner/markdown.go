package scanner

import (
	"regexp"

	"github.com/rs/zerolog"
)

var (
	// [label](target) — the target must be free of whitespace and closing
	// parenthesis, which also strips optional titles.
	markdownLinkRegex = regexp.MustCompile(`\[[^\]]*\]\(([^)\s]+)`)
	// <target> autolinks; the classifier check afterwards rejects plain
	// HTML tags that happen to match.
	markdownAutolinkRegex = regexp.MustCompile(`<([^<>\s]+)>`)
)

// MarkdownScanner extracts URLs from prose markup. Link-syntax and
// embedded-HTML attribute passes run before the plain-text pass; fenced
// code blocks, inline code spans, and HTML comments are suppressed.
// Relative link targets are never extracted: without a base URL they are
// not resolvable, so only scheme-prefixed targets count.
type MarkdownScanner struct {
	lineScanner
}

// NewMarkdownScanner creates a new Markdown scanner.
func NewMarkdownScanner(logger zerolog.Logger) *MarkdownScanner {
	return &MarkdownScanner{lineScanner{
		logger: logger.With().Str("component", "MarkdownScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{
				BlockOpen:  "<!--",
				BlockClose: "-->",
				Fences:     true,
				InlineCode: true,
			}
		},
		passes: []linePass{
			capturePass(markdownLinkRegex, 1),
			capturePass(markdownAutolinkRegex, 1),
			capturePass(linkAttrRegex, 1),
			plainTextPass,
		},
	}}
}
