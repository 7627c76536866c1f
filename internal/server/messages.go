package server

import (
	"github.com/uilens-dev/uilens/internal/hierarchy"
	"github.com/uilens-dev/uilens/internal/rendertree"
)

// inboundMessage is the envelope for every message the channel accepts.
// Unused fields stay empty for a given type.
type inboundMessage struct {
	Type string `json:"type"`

	// type=config: one idempotent per-category set call.
	Category     string              `json:"category,omitempty"`
	ProjectRoot  string              `json:"projectRoot,omitempty"`
	Mode         string              `json:"mode,omitempty"`
	UsageMap     map[string][]string `json:"usageMap,omitempty"`
	ImportMap    map[string][]string `json:"importMap,omitempty"`
	ProjectFiles []string            `json:"projectFiles,omitempty"`

	// type=activate: a render-tree snapshot plus the anchors to process.
	Elements     []activationElement        `json:"elements,omitempty"`
	Tree         []rendertree.SnapshotNode  `json:"tree,omitempty"`
	DOMAncestors map[string][]ancestorLevel `json:"domAncestors,omitempty"`

	// type=open: a previously emitted hierarchy path string.
	Path string `json:"path,omitempty"`

	// type=registerSource: one additive source-map entry.
	Name string `json:"name,omitempty"`
	File string `json:"file,omitempty"`
}

// activationElement identifies one overlay element: the DOM anchor's render
// node plus the leaf name shown for the region.
type activationElement struct {
	ID     string `json:"id"`
	NodeID string `json:"nodeId"`
	Leaf   string `json:"leaf,omitempty"`
}

// ancestorLevel is one level of the client-collected DOM-ancestor fallback.
type ancestorLevel struct {
	Name string `json:"name,omitempty"`
	File string `json:"file,omitempty"`
}

// ancestorList adapts client-supplied levels to the hierarchy fallback
// scanner.
type ancestorList []ancestorLevel

func (a ancestorList) Ancestors(limit int) []hierarchy.AncestorEntry {
	if limit > len(a) {
		limit = len(a)
	}
	out := make([]hierarchy.AncestorEntry, 0, limit)
	for _, level := range a[:limit] {
		out = append(out, hierarchy.AncestorEntry{Name: level.Name, OriginFile: level.File})
	}
	return out
}

type outboundMessage struct {
	Type     string             `json:"type"`
	Elements []hierarchyElement `json:"elements,omitempty"`
	Path     string             `json:"path,omitempty"`
	File     string             `json:"file,omitempty"`
	Message  string             `json:"message,omitempty"`
}

// hierarchyElement carries the path strings for one overlay element. In
// simple display mode the full structure is omitted.
type hierarchyElement struct {
	ID       string `json:"id"`
	Full     string `json:"full,omitempty"`
	Filtered string `json:"filtered"`
}
