package scanner

import (
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/linksift/linksift/internal/models"
)

// TOMLScanner extracts URLs from table-configuration documents. It first
// attempts a full structural parse into a value tree walked recursively
// with dotted context paths; when parsing fails the outcome is an explicit
// fallback carrying the raw text into the same line scanning the simpler
// formats use, plus a warning-level parse error noting the degradation.
type TOMLScanner struct {
	logger   zerolog.Logger
	fallback *lineScanner
}

// NewTOMLScanner creates a new TOML scanner.
func NewTOMLScanner(logger zerolog.Logger) *TOMLScanner {
	componentLogger := logger.With().Str("component", "TOMLScanner").Logger()
	return &TOMLScanner{
		logger: componentLogger,
		fallback: &lineScanner{
			logger: componentLogger,
			suppression: func() *Suppression {
				return &Suppression{LineComments: []string{"#"}}
			},
			passes: []linePass{plainTextPass},
		},
	}
}

// Scan implements the Scanner interface.
func (s *TOMLScanner) Scan(content string) Output {
	tree, parseErr := parseTOML(content)
	if parseErr != nil {
		s.logger.Warn().Err(parseErr).Msg("TOML structural parse failed, falling back to line scan")
		out := s.fallback.Scan(content)
		out.Errors = append([]models.ParseError{fallbackError(FormatTOML, parseErr)}, out.Errors...)
		return out
	}

	sc := NewScanContext(&Suppression{})
	urls := walkTree(tree, "root", sc)
	if urls == nil {
		urls = []models.Url{}
	}
	return Output{Urls: urls}
}

func parseTOML(content string) (map[string]interface{}, error) {
	var tree map[string]interface{}
	if err := toml.Unmarshal([]byte(content), &tree); err != nil {
		return nil, err
	}
	return tree, nil
}
