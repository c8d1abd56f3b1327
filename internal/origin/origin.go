// Package origin decides whether a caller origin is allowed to hit a
// waitlist's public endpoints.
package origin

import (
	"net/url"
	"strings"
)

// Allowed reports whether the request origin passes the waitlist's
// pattern list. An empty list allows everything. Patterns are matched
// in order, case-insensitively:
//
//	*.example.com        any subdomain of example.com (not the apex)
//	https://example.com  exact origin string
//	example.com          exact host
//
// A present but unparseable origin is never allowed.
func Allowed(requestOrigin string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}

	reqOrigin := strings.ToLower(strings.TrimSpace(requestOrigin))
	u, err := url.Parse(reqOrigin)
	if err != nil || u.Hostname() == "" {
		return false
	}
	host := u.Hostname()

	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		switch {
		case strings.HasPrefix(p, "*."):
			if strings.HasSuffix(host, "."+strings.TrimPrefix(p, "*.")) {
				return true
			}
		case strings.Contains(p, "://"):
			if reqOrigin == strings.TrimRight(p, "/") {
				return true
			}
		default:
			if host == p {
				return true
			}
		}
	}
	return false
}
