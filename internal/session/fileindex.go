package session

import (
	"sort"

	"github.com/uilens-dev/uilens/internal/pathutil"
)

// FileIndex is the set of normalized project file paths plus two derived
// lookup maps: component-name-token -> files and directory-token -> files.
// It is rebuilt wholesale when the project file list is resupplied, never
// incrementally patched; the only other mutation is the additive insertion
// of paths learned from usage/import map keys.
type FileIndex struct {
	paths  map[string]bool
	byName map[string]map[string]bool
	byDir  map[string]map[string]bool
}

func NewFileIndex() *FileIndex {
	return &FileIndex{
		paths:  make(map[string]bool),
		byName: make(map[string]map[string]bool),
		byDir:  make(map[string]map[string]bool),
	}
}

// Add inserts one path and its derived tokens.
func (idx *FileIndex) Add(path string) {
	normalized := pathutil.Normalize(path)
	if normalized == "" {
		return
	}
	idx.paths[normalized] = true

	if name := pathutil.BaseName(normalized); name != "" {
		insertToken(idx.byName, name, normalized)
	}
	segments := pathutil.Segments(normalized)
	for _, dir := range segments[:max(len(segments)-1, 0)] {
		insertToken(idx.byDir, dir, normalized)
	}
}

// HasPath reports whether the normalized path is known.
func (idx *FileIndex) HasPath(path string) bool {
	return idx.paths[pathutil.Normalize(path)]
}

// HasNameToken reports whether any known file carries the component-name
// token (a lower-cased file base name).
func (idx *FileIndex) HasNameToken(name string) bool {
	return len(idx.byName[name]) > 0
}

// FilesForName returns the normalized paths carrying the name token, in
// sorted order.
func (idx *FileIndex) FilesForName(name string) []string {
	return setKeys(idx.byName[name])
}

// FilesForDir returns the normalized paths under the directory token, in
// sorted order.
func (idx *FileIndex) FilesForDir(dir string) []string {
	return setKeys(idx.byDir[dir])
}

// Len returns the number of known paths.
func (idx *FileIndex) Len() int {
	return len(idx.paths)
}

func insertToken(tokens map[string]map[string]bool, token, path string) {
	set, ok := tokens[token]
	if !ok {
		set = make(map[string]bool)
		tokens[token] = set
	}
	set[path] = true
}

func setKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for key := range set {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}
