package scanner

import (
	"regexp"

	"github.com/rs/zerolog"
)

// xmlAttrRegex extends the markup attribute set with xlink:href, common in
// SVG and other XML vocabularies.
var xmlAttrRegex = regexp.MustCompile(`(?i)\b(?:href|src|action|xlink:href)\s*=\s*["']([^"']+)["']`)

// XMLScanner extracts URLs from tag-based markup: the attribute pass
// first, then plain-text boundary matches in text nodes, with <!-- -->
// comment regions suppressed across lines.
type XMLScanner struct {
	lineScanner
}

// NewXMLScanner creates a new XML scanner.
func NewXMLScanner(logger zerolog.Logger) *XMLScanner {
	return &XMLScanner{lineScanner{
		logger: logger.With().Str("component", "XMLScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{BlockOpen: "<!--", BlockClose: "-->"}
		},
		passes: []linePass{
			capturePass(xmlAttrRegex, 1),
			plainTextPass,
		},
	}}
}
