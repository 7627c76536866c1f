// Package hierarchy reduces walker observations to the two path strings
// attached to each overlay element: the full structure (everything) and the
// filtered structure (project-owned components only).
package hierarchy

import (
	"strings"

	"github.com/uilens-dev/uilens/internal/classify"
	"github.com/uilens-dev/uilens/internal/markup"
	"github.com/uilens-dev/uilens/internal/pathutil"
	"github.com/uilens-dev/uilens/internal/rendertree"
	"github.com/uilens-dev/uilens/internal/session"
)

// Separator joins component names in a hierarchy path, most-distant
// ancestor first, leaf last.
const Separator = " -> "

// maxAncestorLevels caps the DOM-ancestor fallback scan.
const maxAncestorLevels = 20

// AncestorEntry is one level of the DOM-ancestor fallback scan, supplied by
// an external collaborator when no render-tree observations were available.
type AncestorEntry struct {
	Name       string
	OriginFile string
}

// AncestorScanner walks DOM ancestors of the anchor element, nearest first.
type AncestorScanner interface {
	Ancestors(limit int) []AncestorEntry
}

// Builder produces hierarchy path strings from one walk's observations.
type Builder struct {
	Ref *session.Session
	// Scanner is optional; when present it backs the DOM-ancestor fallback.
	Scanner AncestorScanner
}

// Build returns the full and filtered structure strings for one anchor.
// Both are non-empty whenever a leaf name is supplied. Observations arrive
// nearest-first; output paths read root-to-leaf.
func (b *Builder) Build(observations []rendertree.Observation, leaf string) (full, filtered string) {
	kept := make([]rendertree.Observation, 0, len(observations))
	for _, obs := range observations {
		if strings.EqualFold(obs.Name, leaf) || markup.IsTag(obs.Name) {
			continue
		}
		kept = append(kept, obs)
	}

	full = b.buildFull(kept, len(observations) == 0, leaf)
	filtered = b.buildFiltered(kept, len(observations) == 0, leaf)
	return full, filtered
}

func (b *Builder) buildFull(kept []rendertree.Observation, treeEmpty bool, leaf string) string {
	var names []string
	if treeEmpty && b.Scanner != nil {
		names = b.fallbackNames(false)
	} else {
		names = make([]string, 0, len(kept))
		for _, obs := range kept {
			names = append(names, obs.Name)
		}
		reverse(names)
	}
	if leaf != "" {
		names = append(names, leaf)
	}
	return strings.Join(collapseConsecutive(names), Separator)
}

func (b *Builder) buildFiltered(kept []rendertree.Observation, treeEmpty bool, leaf string) string {
	names := make([]string, 0, len(kept))
	seen := make(map[string]bool)
	for _, obs := range kept {
		if !obs.Internal || !b.corroborated(obs.Name, obs.OriginFile) {
			continue
		}
		key := strings.ToLower(obs.Name)
		if obs.OriginFile != "" {
			key += "\x00" + pathutil.Normalize(obs.OriginFile)
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		names = append(names, obs.Name)
	}
	reverse(names)

	if len(names) == 0 && treeEmpty && b.Scanner != nil {
		names = b.fallbackNames(true)
	}

	if leaf != "" && !containsFold(names, leaf) {
		names = append(names, leaf)
	}
	names = collapseConsecutive(names)
	if len(names) == 0 {
		return leaf
	}
	return strings.Join(names, Separator)
}

// fallbackNames runs the DOM-ancestor scan, extracting a deduplicated name
// per level and returning them root-to-leaf. With internalOnly set, levels
// not classified as project-owned are dropped.
func (b *Builder) fallbackNames(internalOnly bool) []string {
	entries := b.Scanner.Ancestors(maxAncestorLevels)
	var reference classify.Reference
	if b.Ref != nil {
		reference = b.Ref
	}

	names := make([]string, 0, len(entries))
	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.Name == "" || markup.IsTag(entry.Name) {
			continue
		}
		if internalOnly && !classify.IsProjectNode(entry.OriginFile, entry.Name, reference) {
			continue
		}
		lower := strings.ToLower(entry.Name)
		if seen[lower] {
			continue
		}
		seen[lower] = true
		names = append(names, entry.Name)
	}
	reverse(names)
	return names
}

// corroborated rejects internal-looking false positives: the name must
// textually match its own origin file, or be a known token in the project
// file index.
func (b *Builder) corroborated(name, originFile string) bool {
	if matchesOriginFile(name, originFile) {
		return true
	}
	return b.Ref != nil && b.Ref.HasNameToken(strings.ToLower(name))
}

// matchesOriginFile checks name against the origin file's base-name and
// index-file-directory patterns.
func matchesOriginFile(name, originFile string) bool {
	if originFile == "" || name == "" {
		return false
	}
	base := pathutil.BaseName(originFile)
	lower := strings.ToLower(name)
	if base == lower || strings.HasSuffix(base, lower) {
		return true
	}
	return base == "index" && pathutil.ParentDir(originFile) == lower
}

func collapseConsecutive(names []string) []string {
	out := names[:0]
	for _, name := range names {
		if len(out) > 0 && strings.EqualFold(out[len(out)-1], name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func containsFold(names []string, target string) bool {
	for _, name := range names {
		if strings.EqualFold(name, target) {
			return true
		}
	}
	return false
}

func reverse(items []string) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
