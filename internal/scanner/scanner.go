// Package scanner implements the format-specific URL scanners. Each
// scanner walks a document line by line (or, for the table and section
// configuration dialects, via a full structural parse with line-scan
// fallback), applies its extraction passes in priority order on top of the
// shared boundary vocabulary, and skips tokens inside comments and code
// regions.
package scanner

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/linksift/linksift/internal/models"
)

// Known format tags. "yaml"/"yml" and "javascript"/"typescript" are
// spellings of the same scanner.
const (
	FormatHTML       = "html"
	FormatMarkdown   = "markdown"
	FormatCSS        = "css"
	FormatJavaScript = "javascript"
	FormatTypeScript = "typescript"
	FormatJSON       = "json"
	FormatYAML       = "yaml"
	FormatYML        = "yml"
	FormatXML        = "xml"
	FormatProperties = "properties"
	FormatEnv        = "env"
	FormatTOML       = "toml"
	FormatINI        = "ini"
	FormatUnknown    = "unknown"
)

// Output is what one scanner invocation produces: tokens in detection
// order plus any per-line or fallback errors recorded along the way.
type Output struct {
	Urls   []models.Url
	Errors []models.ParseError
}

// Scanner extracts URL tokens from a document of one format.
type Scanner interface {
	Scan(content string) Output
}

// Resolve maps a format tag to its scanner and the resolved tag. Any
// unrecognized tag falls back to the Markdown scanner, whose plain-text and
// link passes are the most permissive superset.
func Resolve(formatTag string, logger zerolog.Logger) (Scanner, string) {
	tag := strings.ToLower(strings.TrimSpace(formatTag))
	switch tag {
	case FormatHTML:
		return NewHTMLScanner(logger), FormatHTML
	case FormatMarkdown:
		return NewMarkdownScanner(logger), FormatMarkdown
	case FormatCSS:
		return NewCSSScanner(logger), FormatCSS
	case FormatJavaScript, FormatTypeScript:
		return NewScriptScanner(logger), tag
	case FormatJSON:
		return NewJSONScanner(logger), FormatJSON
	case FormatYAML, FormatYML:
		return NewYAMLScanner(logger), FormatYAML
	case FormatXML:
		return NewXMLScanner(logger), FormatXML
	case FormatProperties, FormatEnv:
		return NewPropertiesScanner(logger), tag
	case FormatTOML:
		return NewTOMLScanner(logger), FormatTOML
	case FormatINI:
		return NewINIScanner(logger), FormatINI
	default:
		return NewMarkdownScanner(logger), FormatMarkdown
	}
}
