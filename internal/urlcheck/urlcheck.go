// Package urlcheck validates candidate redirect targets. Checks are
// syntactic only; reachability and DNS are out of scope.
package urlcheck

import (
	"net/url"
	"strings"
)

// IsValidHTTPURL reports whether raw is a syntactically valid http/https URL
// with a non-empty host, after trimming surrounding whitespace. Inputs
// longer than maxLen are rejected.
func IsValidHTTPURL(raw string, maxLen int) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" || len(raw) > maxLen {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}
