// Package postprocess provides pure, stateless transformations over token
// lists: dedupe, grouping, sorting, set comparison, and the line-oriented
// variants host cleanup commands operate on. Nothing here depends on the
// dispatcher; inputs are never mutated.
package postprocess

import (
	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/urlhandler"
)

// Dedupe keeps the first occurrence of each value under case-insensitive,
// whitespace-trimmed equality, preserving the relative order of survivors
// and the first-seen occurrence's context. Idempotent.
func Dedupe(urls []models.Url) []models.Url {
	seen := make(map[string]struct{}, len(urls))
	result := make([]models.Url, 0, len(urls))
	for _, u := range urls {
		key := urlhandler.NormalizeValue(u.Value)
		if _, exists := seen[key]; exists {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, u)
	}
	return result
}
