package postprocess

import (
	"sort"
	"strings"

	"github.com/linksift/linksift/internal/urlhandler"
)

// Line-based variants of the dedupe/sort contracts, used by host cleanup
// commands that operate on plain one-token-per-line text rather than on
// token records.

// DedupeLines keeps the first occurrence of each line under
// case-insensitive trimmed equality, preserving original line text and
// order. Blank lines are dropped.
func DedupeLines(text string) string {
	lines := strings.Split(text, "\n")
	seen := make(map[string]struct{}, len(lines))
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		key := urlhandler.NormalizeValue(line)
		if key == "" {
			continue
		}
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// SortLines sorts non-blank lines lexicographically, keeping original
// line text.
func SortLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i] < kept[j] })
	return strings.Join(kept, "\n")
}

// SortLinesByLength sorts non-blank lines by length ascending, ties broken
// by value ascending.
func SortLinesByLength(text string) string {
	lines := strings.Split(text, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	sort.SliceStable(kept, func(i, j int) bool {
		if len(kept[i]) != len(kept[j]) {
			return len(kept[i]) < len(kept[j])
		}
		return kept[i] < kept[j]
	})
	return strings.Join(kept, "\n")
}
