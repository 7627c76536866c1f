// Package session owns the process-wide reference state consulted by the
// classifier, walker, and disambiguator: project root, usage/import maps,
// the project file index, and the current source map. Mutation is always
// whole-value replacement per category, mirroring the inbound configuration
// channel's semantics; the one exception is the additive register-source
// event. An RWMutex guards the state because the channel serves reads
// concurrently, but the replacement semantics stay last-writer-wins.
package session

import (
	"strings"
	"sync"

	"github.com/uilens-dev/uilens/internal/pathutil"
	"github.com/uilens-dev/uilens/internal/sourcemap"
)

type Session struct {
	mu sync.RWMutex

	projectRoot string
	mode        string
	usage       map[string]map[string]bool
	imports     map[string]map[string]bool
	index       *FileIndex
	sources     sourcemap.Map
}

func New() *Session {
	return &Session{
		usage:   make(map[string]map[string]bool),
		imports: make(map[string]map[string]bool),
		index:   NewFileIndex(),
		sources: make(sourcemap.Map),
	}
}

// SetProjectRoot replaces the established project root.
func (s *Session) SetProjectRoot(root string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projectRoot = root
}

// ProjectRoot returns the current project root, or "" when none has been
// established.
func (s *Session) ProjectRoot() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectRoot
}

// SetMode replaces the display mode token.
func (s *Session) SetMode(mode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
}

func (s *Session) Mode() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

// ReplaceUsageMap replaces the JSX-usage reference map wholesale. Map keys
// are merged additively into the file index's known-path set.
func (s *Session) ReplaceUsageMap(usage map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usage = normalizeReferenceMap(usage)
	s.mergeKnownPaths(usage)
}

// ReplaceImportMap replaces the import-derived reference map wholesale. Map
// keys are merged additively into the file index's known-path set.
func (s *Session) ReplaceImportMap(imports map[string][]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.imports = normalizeReferenceMap(imports)
	s.mergeKnownPaths(imports)
}

// ReplaceProjectFiles rebuilds the file index wholesale from the supplied
// project file list (clear-then-repopulate).
func (s *Session) ReplaceProjectFiles(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = NewFileIndex()
	for _, path := range paths {
		s.index.Add(path)
	}
}

// HasNameToken reports whether the lower-cased name is a known token in the
// file index's name -> files map.
func (s *Session) HasNameToken(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.HasNameToken(strings.ToLower(name))
}

// HasPath reports whether the file is in the known-path set.
func (s *Session) HasPath(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.HasPath(path)
}

// KnownFileCount returns the size of the known-path set.
func (s *Session) KnownFileCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index.Len()
}

// HasReferenceData reports whether any usage or import entries exist at all.
// When it is false the external-usage filter keeps everything: absence of
// data cannot disprove a component.
func (s *Session) HasReferenceData() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.usage) > 0 || len(s.imports) > 0
}

// NameReferencedFrom reports whether name appears in the usage map or, as a
// fallback, the import map entry for file. Comparison is case-insensitive.
func (s *Session) NameReferencedFrom(file, name string) bool {
	normalized := pathutil.Normalize(file)
	lower := strings.ToLower(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.usage[normalized][lower] {
		return true
	}
	return s.imports[normalized][lower]
}

// ReplaceSourceMap swaps in a freshly built source map wholesale.
func (s *Session) ReplaceSourceMap(m sourcemap.Map) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m == nil {
		m = make(sourcemap.Map)
	}
	s.sources = m
}

// SourceMap returns the current source map.
func (s *Session) SourceMap() sourcemap.Map {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sources
}

// RegisterSource appends a single candidate entry; the one additive
// mutation the source map supports between rebuilds.
func (s *Session) RegisterSource(name string, candidate sourcemap.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sources = s.sources.Clone()
	s.sources.Add(name, candidate)
}

func (s *Session) mergeKnownPaths(m map[string][]string) {
	for path := range m {
		s.index.Add(path)
	}
}

func normalizeReferenceMap(m map[string][]string) map[string]map[string]bool {
	out := make(map[string]map[string]bool, len(m))
	for path, names := range m {
		set := make(map[string]bool, len(names))
		for _, name := range names {
			set[strings.ToLower(name)] = true
		}
		out[pathutil.Normalize(path)] = set
	}
	return out
}
