package postprocess

import (
	"sort"

	"github.com/linksift/linksift/internal/models"
)

// Every sort is a total order with ties broken by raw value ascending, so
// results are deterministic and idempotent under re-sort. All sorts copy
// their input.

// SortByValue sorts lexicographically by raw value.
func SortByValue(urls []models.Url) []models.Url {
	sorted := copyUrls(urls)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// SortBySchemeThenValue sorts by scheme name, then raw value.
func SortBySchemeThenValue(urls []models.Url) []models.Url {
	sorted := copyUrls(urls)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Scheme != sorted[j].Scheme {
			return sorted[i].Scheme < sorted[j].Scheme
		}
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// SortByHostThenValue sorts by host for web/ftp tokens (raw value for
// other schemes), then raw value.
func SortByHostThenValue(urls []models.Url) []models.Url {
	sorted := copyUrls(urls)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := hostSortKey(sorted[i]), hostSortKey(sorted[j])
		if ki != kj {
			return ki < kj
		}
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

// SortByLengthThenValue sorts by value length ascending, then raw value.
func SortByLengthThenValue(urls []models.Url) []models.Url {
	sorted := copyUrls(urls)
	sort.SliceStable(sorted, func(i, j int) bool {
		if len(sorted[i].Value) != len(sorted[j].Value) {
			return len(sorted[i].Value) < len(sorted[j].Value)
		}
		return sorted[i].Value < sorted[j].Value
	})
	return sorted
}

func hostSortKey(u models.Url) string {
	if u.Scheme.IsWeb() && u.Host != "" {
		return u.Host
	}
	return u.Value
}

func copyUrls(urls []models.Url) []models.Url {
	sorted := make([]models.Url, len(urls))
	copy(sorted, urls)
	return sorted
}
