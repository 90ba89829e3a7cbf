package postprocess

import (
	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/urlhandler"
)

// SetComparison buckets the URLs of two extraction runs: New appear only
// in the current run, Old only in the previous one, Existing in both.
type SetComparison struct {
	New      []models.Url
	Existing []models.Url
	Old      []models.Url
}

// Counts returns the bucket sizes in New, Existing, Old order.
func (sc SetComparison) Counts() (int, int, int) {
	return len(sc.New), len(sc.Existing), len(sc.Old)
}

// CompareSets compares a previous and a current extraction run by
// case-insensitive trimmed value. Bucket order follows the current run for
// New/Existing and the previous run for Old.
func CompareSets(previous, current []models.Url) SetComparison {
	previousKeys := make(map[string]struct{}, len(previous))
	for _, u := range previous {
		previousKeys[urlhandler.NormalizeValue(u.Value)] = struct{}{}
	}
	currentKeys := make(map[string]struct{}, len(current))
	for _, u := range current {
		currentKeys[urlhandler.NormalizeValue(u.Value)] = struct{}{}
	}

	comparison := SetComparison{}
	for _, u := range current {
		if _, wasThere := previousKeys[urlhandler.NormalizeValue(u.Value)]; wasThere {
			comparison.Existing = append(comparison.Existing, u)
		} else {
			comparison.New = append(comparison.New, u)
		}
	}
	for _, u := range previous {
		if _, stillThere := currentKeys[urlhandler.NormalizeValue(u.Value)]; !stillThere {
			comparison.Old = append(comparison.Old, u)
		}
	}
	return comparison
}
