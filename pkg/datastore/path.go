package datastore

import "strings"

// splitPath splits a slash-delimited pointer path into segments.
// Paths are plain slash-split: no percent-decoding, no escapes. Empty
// segments from leading, trailing, or doubled slashes are dropped, so ""
// and "/" both address the root.
func splitPath(path string) []string {
	if path == "" || path == "/" {
		return nil
	}
	parts := strings.Split(path, "/")
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// joinPaths concatenates two pointer paths with a single separator.
// Either side may be empty. joinPaths is associative, which is what makes
// WithBasePath composition hold.
func joinPaths(base, path string) string {
	base = strings.Trim(base, "/")
	path = strings.Trim(path, "/")
	switch {
	case base == "":
		return path
	case path == "":
		return base
	default:
		return base + "/" + path
	}
}
