package translator

import "strings"

// NormalizeBaseURL trims a trailing slash from a caller-configured provider base URL so
// adapters can safely join it with a leading-slash path without producing a doubled or
// missing separator.
func NormalizeBaseURL(base string) string {
	return strings.TrimRight(base, "/")
}

// JoinURL joins a normalized base URL with a path that must start with "/".
func JoinURL(base, path string) string {
	return NormalizeBaseURL(base) + path
}
