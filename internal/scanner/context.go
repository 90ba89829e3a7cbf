package scanner

import "strings"

// ScanContext is the per-call mutable state threaded through a single
// scanner invocation: the seen-set for value dedupe and the suppression
// tracker for comment and code regions. Each call builds its own context,
// so calls are independent and safe to run concurrently.
type ScanContext struct {
	seen        map[string]struct{}
	suppression *Suppression
}

// NewScanContext creates a fresh context for one scan.
func NewScanContext(sup *Suppression) *ScanContext {
	return &ScanContext{
		seen:        make(map[string]struct{}),
		suppression: sup,
	}
}

// MarkSeen records a token value and reports whether it was new. The same
// literal string is never emitted twice from one document, across lines or
// extraction passes.
func (sc *ScanContext) MarkSeen(value string) bool {
	if _, exists := sc.seen[value]; exists {
		return false
	}
	sc.seen[value] = struct{}{}
	return true
}

// Suppression is a small state machine tracking regions whose contents must
// not yield tokens: block comments spanning lines, line comments, Markdown
// fenced code blocks, and inline code spans. State advances one line at a
// time via Analyze.
type Suppression struct {
	// BlockOpen/BlockClose delimit multi-line comments ("<!--"/"-->",
	// "/*"/"*/"). Empty disables block tracking.
	BlockOpen  string
	BlockClose string
	// LineComments are markers that suppress the rest of the line. A marker
	// only counts when preceded by whitespace or at line start, which keeps
	// "//" inside "https://" and "#" fragments out of comment handling.
	LineComments []string
	// StartOnlyComments restricts line comment markers to column one
	// (properties and ini dialects).
	StartOnlyComments bool
	// Fences enables Markdown fenced code blocks: a line whose trimmed
	// prefix is three backticks toggles the fence and is itself suppressed.
	Fences bool
	// InlineCode enables the Markdown inline span rule: a match start
	// preceded by an odd count of backticks on its line is suppressed.
	InlineCode bool

	inBlock bool
	inFence bool
}

// LineView holds the suppressed intervals computed for one line.
type LineView struct {
	line       string
	intervals  [][2]int
	whole      bool
	inlineCode bool
}

// Analyze computes the suppressed regions of a line and advances the
// cross-line state.
func (s *Suppression) Analyze(line string) LineView {
	lv := LineView{line: line, inlineCode: s.InlineCode}

	if s.Fences {
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			s.inFence = !s.inFence
			lv.whole = true
			return lv
		}
		if s.inFence {
			lv.whole = true
			return lv
		}
	}

	if s.BlockOpen != "" {
		s.markBlockComments(line, &lv)
	}
	if lv.whole {
		return lv
	}
	for _, marker := range s.LineComments {
		if idx := s.lineCommentStart(line, marker, &lv); idx >= 0 {
			lv.intervals = append(lv.intervals, [2]int{idx, len(line)})
		}
	}
	return lv
}

func (s *Suppression) markBlockComments(line string, lv *LineView) {
	pos := 0
	for pos <= len(line) {
		if s.inBlock {
			idx := strings.Index(line[pos:], s.BlockClose)
			if idx < 0 {
				if pos == 0 {
					lv.whole = true
				} else {
					lv.intervals = append(lv.intervals, [2]int{pos, len(line)})
				}
				return
			}
			end := pos + idx + len(s.BlockClose)
			lv.intervals = append(lv.intervals, [2]int{pos, end})
			s.inBlock = false
			pos = end
			continue
		}

		idx := strings.Index(line[pos:], s.BlockOpen)
		if idx < 0 {
			return
		}
		open := pos + idx
		rel := strings.Index(line[open+len(s.BlockOpen):], s.BlockClose)
		if rel < 0 {
			lv.intervals = append(lv.intervals, [2]int{open, len(line)})
			s.inBlock = true
			return
		}
		end := open + len(s.BlockOpen) + rel + len(s.BlockClose)
		lv.intervals = append(lv.intervals, [2]int{open, end})
		pos = end
	}
}

func (s *Suppression) lineCommentStart(line, marker string, lv *LineView) int {
	search := 0
	for search < len(line) {
		idx := strings.Index(line[search:], marker)
		if idx < 0 {
			return -1
		}
		abs := search + idx
		if lv.contains(abs) {
			search = abs + len(marker)
			continue
		}
		if s.StartOnlyComments {
			if strings.TrimSpace(line[:abs]) != "" {
				return -1
			}
			return abs
		}
		if abs > 0 && line[abs-1] != ' ' && line[abs-1] != '\t' {
			search = abs + len(marker)
			continue
		}
		return abs
	}
	return -1
}

func (lv LineView) contains(offset int) bool {
	for _, iv := range lv.intervals {
		if offset >= iv[0] && offset < iv[1] {
			return true
		}
	}
	return false
}

// Suppressed reports whether a match starting at the given zero-based
// offset falls inside a suppressed region of this line.
func (lv LineView) Suppressed(start int) bool {
	if lv.whole {
		return true
	}
	if lv.contains(start) {
		return true
	}
	if lv.inlineCode && strings.Count(lv.line[:start], "`")%2 == 1 {
		return true
	}
	return false
}
