// Package patterns defines the shared token-boundary vocabulary used by
// every format scanner: where a scheme-prefixed URL starts and where it
// safely ends given adjacent punctuation or quoting.
package patterns

import (
	"regexp"
	"sort"

	"github.com/linksift/linksift/internal/models"
)

// terminatorClass continues a match over characters that are not whitespace
// and not one of the delimiters most likely to end a URL inside markup
// attributes, quoted strings, and prose. Query strings, fragments, and
// unusual path characters still pass. A URL followed immediately by a space
// in free text is truncated at the space; that is an accepted lossy
// boundary, asserted as expected behavior in the tests.
const terminatorClass = `[^\s<>"'{}|\\^\x60\[\];)]+`

// SchemePattern binds a scheme to its compiled boundary expression.
type SchemePattern struct {
	Scheme models.Scheme
	Regexp *regexp.Regexp
}

// boundaryPatterns is ordered by classification priority.
var boundaryPatterns = []SchemePattern{
	{models.SchemeHTTPS, regexp.MustCompile(`(?i)https://` + terminatorClass)},
	{models.SchemeHTTP, regexp.MustCompile(`(?i)http://` + terminatorClass)},
	{models.SchemeFTP, regexp.MustCompile(`(?i)ftp://` + terminatorClass)},
	{models.SchemeFile, regexp.MustCompile(`(?i)file://` + terminatorClass)},
	{models.SchemeMailto, regexp.MustCompile(`(?i)mailto:` + terminatorClass)},
	{models.SchemeTel, regexp.MustCompile(`(?i)tel:` + terminatorClass)},
}

// All returns the scheme boundary patterns in priority order.
func All() []SchemePattern {
	return boundaryPatterns
}

// Match is one boundary hit within a line.
type Match struct {
	Value  string
	Scheme models.Scheme
	Start  int // zero-based byte offset in the line
}

// FindAll returns every boundary match in the line across all schemes,
// ordered by start offset so emission follows source order.
func FindAll(line string) []Match {
	var matches []Match
	for _, sp := range boundaryPatterns {
		for _, loc := range sp.Regexp.FindAllStringIndex(line, -1) {
			matches = append(matches, Match{
				Value:  line[loc[0]:loc[1]],
				Scheme: sp.Scheme,
				Start:  loc[0],
			})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Start < matches[j].Start
	})
	return matches
}
