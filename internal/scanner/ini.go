package scanner

import (
	"github.com/rs/zerolog"
	"gopkg.in/ini.v1"

	"github.com/linksift/linksift/internal/models"
)

// INIScanner extracts URLs from section-configuration documents via a full
// structural parse: every section's keys are visited in declaration order
// and string values the classifier recognizes are collected with a
// root.section.key context path. A failed parse degrades to line scanning
// with a warning-level parse error, the same contract as the TOML scanner.
type INIScanner struct {
	logger   zerolog.Logger
	fallback *lineScanner
}

// NewINIScanner creates a new INI scanner.
func NewINIScanner(logger zerolog.Logger) *INIScanner {
	componentLogger := logger.With().Str("component", "INIScanner").Logger()
	return &INIScanner{
		logger: componentLogger,
		fallback: &lineScanner{
			logger: componentLogger,
			suppression: func() *Suppression {
				return &Suppression{
					LineComments:      []string{";", "#"},
					StartOnlyComments: true,
				}
			},
			passes: []linePass{plainTextPass},
		},
	}
}

// Scan implements the Scanner interface.
func (s *INIScanner) Scan(content string) Output {
	file, parseErr := ini.Load([]byte(content))
	if parseErr != nil {
		s.logger.Warn().Err(parseErr).Msg("INI structural parse failed, falling back to line scan")
		out := s.fallback.Scan(content)
		out.Errors = append([]models.ParseError{fallbackError(FormatINI, parseErr)}, out.Errors...)
		return out
	}

	sc := NewScanContext(&Suppression{})
	urls := []models.Url{}
	for _, section := range file.Sections() {
		path := "root"
		if section.Name() != ini.DefaultSection {
			path = path + "." + section.Name()
		}
		for _, key := range section.Keys() {
			if u, ok := urlFromLeaf(key.Value(), path+"."+key.Name(), sc); ok {
				urls = append(urls, u)
			}
		}
	}
	return Output{Urls: urls}
}
