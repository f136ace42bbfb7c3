package overlap

import "strings"

// NormalizePath strips a single trailing slash from a path so that
// "/users/" and "/users" compare equal. It performs no other
// canonicalization: internal slashes, percent escapes and case are
// kept as-is. NormalizePath is idempotent.
func NormalizePath(path string) string {
	if strings.HasSuffix(path, "/") {
		return strings.TrimSuffix(path, "/")
	}
	return path
}
