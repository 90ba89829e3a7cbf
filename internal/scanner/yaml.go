package scanner

import (
	"github.com/rs/zerolog"
)

// YAMLScanner extracts URLs from line-oriented mapping documents
// ("yaml" and "yml" resolve here). A # only starts a comment when preceded
// by whitespace, which keeps URL fragments intact; inside the remaining
// text the plain boundary pass finds both bare and quoted scalar values.
type YAMLScanner struct {
	lineScanner
}

// NewYAMLScanner creates a new YAML scanner.
func NewYAMLScanner(logger zerolog.Logger) *YAMLScanner {
	return &YAMLScanner{lineScanner{
		logger: logger.With().Str("component", "YAMLScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{LineComments: []string{"#"}}
		},
		passes: []linePass{
			plainTextPass,
		},
	}}
}
