// Package classifier decides the scheme of candidate URL strings and
// extracts host/path components for authority-bearing schemes. It is a
// layer of pure functions: no state, no side effects, and classification
// failure is expressed as SchemeUnknown rather than an error.
package classifier

import (
	"regexp"
	"strings"

	"github.com/linksift/linksift/internal/models"
	"github.com/linksift/linksift/internal/urlhandler"
)

// schemePrefixes is checked in priority order; the first case-insensitive
// prefix match wins.
var schemePrefixes = []struct {
	prefix string
	scheme models.Scheme
}{
	{"https://", models.SchemeHTTPS},
	{"http://", models.SchemeHTTP},
	{"ftp://", models.SchemeFTP},
	{"file://", models.SchemeFile},
	{"mailto:", models.SchemeMailto},
	{"tel:", models.SchemeTel},
}

var domainLikeRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]*[a-zA-Z0-9])?)+$`)

// Classify returns the scheme for a candidate string. Anything without a
// recognized prefix classifies as SchemeUnknown; Classify never fails.
func Classify(candidate string) models.Scheme {
	lowered := strings.ToLower(strings.TrimSpace(candidate))
	for _, sp := range schemePrefixes {
		if strings.HasPrefix(lowered, sp.prefix) {
			return sp.scheme
		}
	}
	return models.SchemeUnknown
}

// IsRecognized reports whether the candidate bears one of the recognized
// scheme prefixes. Attribute- and link-sourced tokens must pass this check
// before acceptance, which rejects javascript:, data:, and bare relative
// paths.
func IsRecognized(candidate string) bool {
	return Classify(candidate) != models.SchemeUnknown
}

// Components holds the parsed pieces of an authority-bearing URL.
type Components struct {
	Scheme models.Scheme
	Host   string
	Path   string
}

// ExtractComponents parses host and path for schemes with an authority
// component (http, https, ftp). For other recognized schemes it returns the
// scheme alone. It reports false only when the candidate cannot be parsed
// as a URL at all.
func ExtractComponents(candidate string) (*Components, bool) {
	scheme := Classify(candidate)
	if scheme == models.SchemeUnknown {
		return nil, false
	}

	comps := &Components{Scheme: scheme}
	if !scheme.IsWeb() {
		return comps, true
	}

	host, path, err := urlhandler.ParseAuthority(candidate)
	if err != nil {
		return nil, false
	}
	comps.Host = host
	comps.Path = path
	return comps, true
}

// TypeOf assigns the coarse collection type for a candidate: recognized
// schemes map to their family, leading-slash strings to absolute-path, and
// bare dotted hostnames to domain.
func TypeOf(candidate string) models.UrlType {
	switch Classify(candidate) {
	case models.SchemeHTTP, models.SchemeHTTPS, models.SchemeFTP:
		return models.TypeWeb
	case models.SchemeFile:
		return models.TypeFile
	case models.SchemeMailto:
		return models.TypeMail
	case models.SchemeTel:
		return models.TypePhone
	}

	trimmed := strings.TrimSpace(candidate)
	if strings.HasPrefix(trimmed, "/") {
		return models.TypeAbsolutePath
	}
	if domainLikeRegex.MatchString(trimmed) {
		return models.TypeDomain
	}
	return ""
}
