package scanner

import (
	"github.com/rs/zerolog"
)

// JSONScanner extracts URLs from structured-object documents. JSON has no
// comment syntax, so the scanner is a quoted-literal pass (string values
// that are themselves recognized URLs) followed by the plain-text pass.
type JSONScanner struct {
	lineScanner
}

// NewJSONScanner creates a new JSON scanner.
func NewJSONScanner(logger zerolog.Logger) *JSONScanner {
	return &JSONScanner{lineScanner{
		logger: logger.With().Str("component", "JSONScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{}
		},
		passes: []linePass{
			capturePass(scriptDoubleQuoteRegex, 1),
			plainTextPass,
		},
	}}
}
