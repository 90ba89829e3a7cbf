package scanner

import (
	"github.com/rs/zerolog"
)

// PropertiesScanner extracts URLs from line-oriented properties documents
// ("properties" and "env" resolve here). Lines starting with # or ! are
// comments; everywhere else the plain boundary pass covers key=value
// right-hand sides and bare values alike.
type PropertiesScanner struct {
	lineScanner
}

// NewPropertiesScanner creates a new properties scanner.
func NewPropertiesScanner(logger zerolog.Logger) *PropertiesScanner {
	return &PropertiesScanner{lineScanner{
		logger: logger.With().Str("component", "PropertiesScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{
				LineComments:      []string{"#", "!"},
				StartOnlyComments: true,
			}
		},
		passes: []linePass{
			plainTextPass,
		},
	}}
}
