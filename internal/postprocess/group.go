package postprocess

import (
	"github.com/linksift/linksift/internal/classifier"
	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/urlhandler"
)

// InvalidHostKey buckets web/ftp URLs whose host cannot be parsed.
const InvalidHostKey = "invalid"

// GroupByScheme buckets tokens by their scheme.
func GroupByScheme(urls []models.Url) map[models.Scheme][]models.Url {
	groups := make(map[models.Scheme][]models.Url)
	for _, u := range urls {
		groups[u.Scheme] = append(groups[u.Scheme], u)
	}
	return groups
}

// GroupByHost buckets web and ftp tokens by host; other schemes bucket
// under their scheme name, and unparseable web/ftp URLs under the
// "invalid" sentinel key.
func GroupByHost(urls []models.Url) map[string][]models.Url {
	groups := make(map[string][]models.Url)
	for _, u := range urls {
		groups[hostKey(u)] = append(groups[hostKey(u)], u)
	}
	return groups
}

// GroupByBaseDomain is GroupByHost with web/ftp hosts reduced to their
// registrable domain, so sub.example.com and www.example.com share a
// bucket.
func GroupByBaseDomain(urls []models.Url) map[string][]models.Url {
	groups := make(map[string][]models.Url)
	for _, u := range urls {
		key := hostKey(u)
		if u.Scheme.IsWeb() && key != InvalidHostKey {
			if base, err := urlhandler.BaseDomain(key); err == nil {
				key = base
			}
		}
		groups[key] = append(groups[key], u)
	}
	return groups
}

func hostKey(u models.Url) string {
	if !u.Scheme.IsWeb() {
		return string(u.Scheme)
	}
	if u.Host != "" {
		return u.Host
	}
	if comps, ok := classifier.ExtractComponents(u.Value); ok && comps.Host != "" {
		return comps.Host
	}
	return InvalidHostKey
}
