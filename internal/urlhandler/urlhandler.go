package urlhandler

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// NormalizeValue prepares a raw token value for comparison: trims
// surrounding whitespace and lowercases it. Dedupe and set comparison key
// on this form while the original value is what gets reported.
func NormalizeValue(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseAuthority parses an authority-bearing URL and returns its lowercase
// hostname and path.
func ParseAuthority(rawURL string) (host string, path string, err error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return "", "", errors.New("URL is empty or only whitespace")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", "", fmt.Errorf("could not parse URL '%s': %w", trimmed, err)
	}

	return strings.ToLower(parsed.Hostname()), parsed.Path, nil
}

// BaseDomain extracts the registrable domain from a hostname
// ("sub.example.co.uk" -> "example.co.uk"). Ports are stripped first.
func BaseDomain(hostname string) (string, error) {
	hostname = strings.ToLower(strings.TrimSpace(hostname))
	if hostname == "" {
		return "", errors.New("hostname is empty")
	}

	if strings.Contains(hostname, ":") {
		if host, _, err := net.SplitHostPort(hostname); err == nil {
			hostname = host
		}
	}

	// Single-label hosts (localhost, bare machine names) have no
	// registrable domain; return them unchanged.
	if !strings.Contains(hostname, ".") {
		return hostname, nil
	}

	base, err := publicsuffix.EffectiveTLDPlusOne(hostname)
	if err != nil {
		return hostname, nil
	}
	return base, nil
}

// ValidateURLFormat validates URL format using net/url parsing (for config validation)
func ValidateURLFormat(rawURL string) error {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return fmt.Errorf("URL is empty")
	}

	if _, err := url.ParseRequestURI(trimmed); err != nil {
		return fmt.Errorf("invalid URL format '%s': %w", trimmed, err)
	}

	return nil
}
