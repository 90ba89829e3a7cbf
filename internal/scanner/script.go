package scanner

import (
	"regexp"

	"github.com/rs/zerolog"
)

var (
	scriptDoubleQuoteRegex = regexp.MustCompile(`"((?:[^"\\]|\\.)+)"`)
	scriptSingleQuoteRegex = regexp.MustCompile(`'((?:[^'\\]|\\.)+)'`)
	scriptBacktickRegex    = regexp.MustCompile("\x60([^\x60]+)\x60")
)

// ScriptScanner extracts URLs from JavaScript and TypeScript sources
// (the two dialects share this scanner): quoted string literals whose
// whole value is a recognized URL come first, then plain-text boundary
// matches for URLs embedded in longer strings or comments-free code.
// Line (//) and block (/* */) comments are suppressed.
type ScriptScanner struct {
	lineScanner
}

// NewScriptScanner creates a new script scanner.
func NewScriptScanner(logger zerolog.Logger) *ScriptScanner {
	return &ScriptScanner{lineScanner{
		logger: logger.With().Str("component", "ScriptScanner").Logger(),
		suppression: func() *Suppression {
			return &Suppression{
				BlockOpen:    "/*",
				BlockClose:   "*/",
				LineComments: []string{"//"},
			}
		},
		passes: []linePass{
			capturePass(scriptDoubleQuoteRegex, 1),
			capturePass(scriptSingleQuoteRegex, 1),
			capturePass(scriptBacktickRegex, 1),
			plainTextPass,
		},
	}}
}
