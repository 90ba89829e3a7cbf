package scanner

import (
	"regexp"

	"github.com/rs/zerolog"
)

var (
	cssURLFuncRegex = regexp.MustCompile(`(?i)url\(\s*['"]?([^'")\s]+)['"]?\s*\)`)
	cssImportRegex  = regexp.MustCompile(`(?i)@import\s+['"]([^'"]+)['"]`)
)

// CSSScanner extracts URLs from stylesheets: url() references and @import
// targets first, then plain-text boundary matches, with /* */ comment
// regions suppressed across lines.
type CSSScanner struct {
	lineScanner
}

// NewCSSScanner creates a new stylesheet scanner.
func NewCSSScanner(logger zerolog.Logger) *CSSScanner {
	return &CSSScanner{lineScanner{
		logger: logger.With().Str("component", "CSSScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{BlockOpen: "/*", BlockClose: "*/"}
		},
		passes: []linePass{
			capturePass(cssURLFuncRegex, 1),
			capturePass(cssImportRegex, 1),
			plainTextPass,
		},
	}}
}
