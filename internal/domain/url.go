package domain

import "strings"

// ValidWebsiteURL reports whether url is acceptable as a shortcut target.
// Only plain http(s) URLs are allowed; anything else (javascript:, data:,
// relative paths) is rejected at the editing boundary.
func ValidWebsiteURL(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
