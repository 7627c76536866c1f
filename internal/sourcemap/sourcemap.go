// Package sourcemap builds the name -> candidate-file index for a project
// source tree and disambiguates names against an observed hierarchy.
package sourcemap

// Priority tiers derived purely from a candidate's file extension.
const (
	TierOther     = 1
	TierScript    = 2
	TierComponent = 3
)

// Candidate is one possible source-file match for a component name.
type Candidate struct {
	// Path of the defining file, as discovered by the scan.
	Path string `json:"path"`
	// Context is the ordered list of directory tokens beneath the nearest
	// source-root convention directory, used for disambiguation.
	Context []string `json:"context,omitempty"`
	// Priority tier; higher wins when no context matches.
	Priority int `json:"priority"`
}

// Map indexes every candidate component name discovered by a scan. It is
// replaced wholesale on rebuild; the only incremental change is an additive
// single-entry registration.
type Map map[string][]Candidate

// Add appends a single candidate entry for name.
func (m Map) Add(name string, candidate Candidate) {
	m[name] = append(m[name], candidate)
}

// Clone returns a shallow copy safe to append to without mutating m.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for name, candidates := range m {
		out[name] = append([]Candidate(nil), candidates...)
	}
	return out
}
