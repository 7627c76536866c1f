package rendertree

// SnapshotNode is the flat wire form of one render node, as serialized by
// the overlay client. Parent, owner, and wrapped types are referenced by id.
type SnapshotNode struct {
	ID           string `json:"id"`
	Kind         string `json:"kind"`
	Name         string `json:"name,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	Tag          string `json:"tag,omitempty"`
	File         string `json:"file,omitempty"`
	Line         int    `json:"line,omitempty"`
	Parent       string `json:"parent,omitempty"`
	Owner        string `json:"owner,omitempty"`
	RenderTarget string `json:"renderTarget,omitempty"`
	Inner        string `json:"inner,omitempty"`
}

// Snapshot holds a decoded render-tree snapshot and hands out Node adapters
// over it. The snapshot is read-only once decoded.
type Snapshot struct {
	nodes map[string]*snapshotNode
}

type snapshotNode struct {
	snap *Snapshot
	raw  SnapshotNode
}

// Wrapped element resolution is bounded: snapshots come from the wire and
// could reference themselves.
const maxWrapDepth = 8

// DecodeSnapshot indexes the wire nodes by id.
func DecodeSnapshot(raw []SnapshotNode) *Snapshot {
	snap := &Snapshot{nodes: make(map[string]*snapshotNode, len(raw))}
	for _, node := range raw {
		if node.ID == "" {
			continue
		}
		snap.nodes[node.ID] = &snapshotNode{snap: snap, raw: node}
	}
	return snap
}

// Node returns the adapter for the node with the given id, or nil when the
// snapshot does not contain it.
func (s *Snapshot) Node(id string) Node {
	if node, ok := s.nodes[id]; ok {
		return node
	}
	return nil
}

// Len returns the number of decoded nodes.
func (s *Snapshot) Len() int {
	return len(s.nodes)
}

func (n *snapshotNode) Element() Element {
	return n.snap.element(n.raw.ID, 0)
}

func (n *snapshotNode) Source() *Origin {
	if n.raw.File == "" {
		return nil
	}
	return &Origin{File: n.raw.File, Line: n.raw.Line}
}

func (n *snapshotNode) Parent() Node {
	return n.snap.Node(n.raw.Parent)
}

func (n *snapshotNode) Owner() Node {
	return n.snap.Node(n.raw.Owner)
}

func (s *Snapshot) element(id string, depth int) Element {
	node, ok := s.nodes[id]
	if !ok || depth >= maxWrapDepth {
		return Element{}
	}
	el := Element{
		Kind:        kindFromToken(node.raw.Kind),
		Name:        node.raw.Name,
		DisplayName: node.raw.DisplayName,
		Tag:         node.raw.Tag,
	}
	if node.raw.RenderTarget != "" {
		target := s.element(node.raw.RenderTarget, depth+1)
		el.RenderTarget = &target
	}
	if node.raw.Inner != "" {
		inner := s.element(node.raw.Inner, depth+1)
		el.Inner = &inner
	}
	return el
}

func kindFromToken(token string) Kind {
	switch token {
	case "function":
		return KindFunction
	case "class":
		return KindClass
	case "tag":
		return KindTag
	case "wrapped":
		return KindWrapped
	default:
		return KindUnknown
	}
}
