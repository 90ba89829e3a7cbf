package scanner

import (
	"fmt"
	"sort"

	"github.com/linksift/linksift/internal/classifier"
	"github.com/linksift/linksift/internal/models"
)

// walkTree collects string leaves from a parsed value tree: arrays by
// index, objects by key (sorted for deterministic output), building a
// dotted/bracketed context path as it descends (root.config.api,
// root.links[0]). Leaves are accepted when the classifier recognizes their
// scheme; structurally-sourced tokens carry the path as context instead of
// a source position.
func walkTree(value interface{}, path string, sc *ScanContext) []models.Url {
	switch v := value.(type) {
	case string:
		if u, ok := urlFromLeaf(v, path, sc); ok {
			return []models.Url{u}
		}
		return nil
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var urls []models.Url
		for _, k := range keys {
			urls = append(urls, walkTree(v[k], path+"."+k, sc)...)
		}
		return urls
	case []interface{}:
		var urls []models.Url
		for i, elem := range v {
			urls = append(urls, walkTree(elem, fmt.Sprintf("%s[%d]", path, i), sc)...)
		}
		return urls
	case []map[string]interface{}:
		// Array-of-table parses surface with this concrete type.
		var urls []models.Url
		for i, elem := range v {
			urls = append(urls, walkTree(elem, fmt.Sprintf("%s[%d]", path, i), sc)...)
		}
		return urls
	default:
		return nil
	}
}

func urlFromLeaf(value, path string, sc *ScanContext) (models.Url, bool) {
	if !classifier.IsRecognized(value) {
		return models.Url{}, false
	}
	if !sc.MarkSeen(value) {
		return models.Url{}, false
	}
	u := models.Url{
		Value:   value,
		Scheme:  classifier.Classify(value),
		Context: path,
	}
	if comps, ok := classifier.ExtractComponents(value); ok && comps.Scheme.IsWeb() {
		u.Host = comps.Host
		u.Path = comps.Path
	}
	return u, true
}

// fallbackError is the warning attached when a structural parse fails and
// the scanner degrades to line scanning.
func fallbackError(format string, cause error) models.ParseError {
	return models.NewParseError(
		models.SeverityWarning,
		fmt.Sprintf("structural parse of %s document failed (%v); fell back to line scanning", format, cause),
		true,
		models.ActionFallback,
	)
}
