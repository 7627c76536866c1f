package rendertree

import (
	"strings"

	"github.com/uilens-dev/uilens/internal/classify"
	"github.com/uilens-dev/uilens/internal/markup"
	"github.com/uilens-dev/uilens/internal/session"
)

// DefaultMaxDepth bounds a walk against malformed or cyclic host structures.
const DefaultMaxDepth = 50

// Observation is one named, classified component recorded during a walk.
// Observations are ephemeral: they live for one walk and are never created
// for plain markup elements.
type Observation struct {
	Name       string
	Node       Node
	Depth      int
	Internal   bool
	OriginFile string
}

// Walk traverses from node toward the root via parent links (owner links
// when no parent exists), recording an observation per named non-markup
// node, in child-to-ancestor order (nearest node first). Callers reverse
// the result when a furthest-first order is wanted.
//
// The walk stops at maxDepth or on revisiting a node (identity cycle
// guard). Nameless nodes are skipped but still advance and count depth.
// After the walk, external observations are dropped unless corroborated by
// the usage/import maps; with no reference data at all everything is kept,
// since absence of data cannot disprove a component.
func Walk(node Node, maxDepth int, ref *session.Session) []Observation {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	// A nil *Session must not become a non-nil interface value downstream.
	var reference classify.Reference
	if ref != nil {
		reference = ref
	}

	observations := make([]Observation, 0, 8)
	visited := make(map[Node]bool)

	for depth := 0; depth < maxDepth && node != nil; depth++ {
		if visited[node] {
			break
		}
		visited[node] = true

		name := nodeName(node)
		if name != "" && !markup.IsTag(name) {
			origin := ""
			if src := node.Source(); src != nil {
				origin = src.File
			}
			observations = append(observations, Observation{
				Name:       name,
				Node:       node,
				Depth:      depth,
				Internal:   classify.IsProjectNode(origin, name, reference),
				OriginFile: origin,
			})
		}

		next := node.Parent()
		if next == nil {
			next = node.Owner()
		}
		node = next
	}

	return filterExternal(observations, ref)
}

// nodeName resolves the node's element name, falling back to a name derived
// from the declared source-origin file's base name. The fallback keeps the
// file name's original casing; pathutil normalization would lower-case it.
func nodeName(node Node) string {
	if name := resolveName(node.Element()); name != "" {
		return name
	}
	if src := node.Source(); src != nil {
		return originBaseName(src.File)
	}
	return ""
}

func originBaseName(file string) string {
	if file == "" {
		return ""
	}
	slashed := strings.ReplaceAll(file, "\\", "/")
	base := slashed[strings.LastIndex(slashed, "/")+1:]
	if dot := strings.LastIndex(base, "."); dot > 0 {
		base = base[:dot]
	}
	return base
}

// filterExternal applies the external-usage filter: an external observation
// survives only if its name is referenced from the file of some internal
// observation collected in the same walk, or when no reference data exists
// at all. Internal observations are always kept; traversal order is
// preserved.
func filterExternal(observations []Observation, ref *session.Session) []Observation {
	if ref == nil || !ref.HasReferenceData() {
		return observations
	}

	internalFiles := make([]string, 0, len(observations))
	for _, obs := range observations {
		if obs.Internal && obs.OriginFile != "" {
			internalFiles = append(internalFiles, obs.OriginFile)
		}
	}

	kept := observations[:0]
	for _, obs := range observations {
		if obs.Internal || referencedFromAny(obs.Name, internalFiles, ref) {
			kept = append(kept, obs)
		}
	}
	return kept
}

func referencedFromAny(name string, files []string, ref *session.Session) bool {
	for _, file := range files {
		if ref.NameReferencedFrom(file, name) {
			return true
		}
	}
	return false
}
