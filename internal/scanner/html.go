package scanner

import (
	"regexp"

	"github.com/rs/zerolog"
)

// linkAttrRegex pulls the value of href, src, and action attributes. The
// attribute pass runs before the plain-text pass so an attribute-sourced
// occurrence wins the seen-set entry for its value.
var linkAttrRegex = regexp.MustCompile(`(?i)\b(?:href|src|action)\s*=\s*["']([^"']+)["']`)

// HTMLScanner extracts URLs from markup documents: link attributes first,
// then plain-text boundary matches, with <!-- --> comment regions
// suppressed across lines. Relative and schemeless attribute values are
// rejected by the classifier check; only tokens bearing a recognized
// scheme prefix count as URLs in markup.
type HTMLScanner struct {
	lineScanner
}

// NewHTMLScanner creates a new HTML scanner.
func NewHTMLScanner(logger zerolog.Logger) *HTMLScanner {
	return &HTMLScanner{lineScanner{
		logger: logger.With().Str("component", "HTMLScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{BlockOpen: "<!--", BlockClose: "-->"}
		},
		passes: []linePass{
			capturePass(linkAttrRegex, 1),
			plainTextPass,
		},
	}}
}
