// Package pathutil canonicalizes file path strings for comparison.
package pathutil

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Real projects produce a finite set of distinct paths, so the memo behaves
// as unbounded in practice while staying safe in a long-lived process.
const memoCapacity = 16384

var memo = newMemo()

func newMemo() *lru.Cache[string, string] {
	cache, err := lru.New[string, string](memoCapacity)
	if err != nil {
		panic(err)
	}
	return cache
}

// Normalize returns the canonical form of a path: backslashes converted to
// forward slashes, leading and trailing slashes trimmed, lower-cased.
// Empty input yields an empty string. Results are memoized by exact input.
func Normalize(path string) string {
	if path == "" {
		return ""
	}
	if cached, ok := memo.Get(path); ok {
		return cached
	}
	normalized := strings.ReplaceAll(path, "\\", "/")
	normalized = strings.Trim(normalized, "/")
	normalized = strings.ToLower(normalized)
	memo.Add(path, normalized)
	return normalized
}

// Segments splits a normalized path into its directory/file components.
func Segments(path string) []string {
	normalized := Normalize(path)
	if normalized == "" {
		return nil
	}
	return strings.Split(normalized, "/")
}

// BaseName returns the last segment of a normalized path with any file
// extension removed.
func BaseName(path string) string {
	segments := Segments(path)
	if len(segments) == 0 {
		return ""
	}
	base := segments[len(segments)-1]
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	return base
}

// ParentDir returns the name of the directory immediately containing the
// path's last segment, or "" when the path has no parent.
func ParentDir(path string) string {
	segments := Segments(path)
	if len(segments) < 2 {
		return ""
	}
	return segments[len(segments)-2]
}
