// Package rendertree walks a host UI runtime's component tree from a DOM
// anchor upward and yields named, classified component observations. The
// walker depends only on the read-only Node adapter, never on concrete host
// runtime internals, so synthetic fixtures can stand in for a live tree.
package rendertree

// Kind describes a render node's element type.
type Kind int

const (
	KindUnknown Kind = iota
	// KindFunction is a function component.
	KindFunction
	// KindClass is a class component.
	KindClass
	// KindTag is a plain markup element with a string tag name.
	KindTag
	// KindWrapped is a wrapper type (memo/forwardRef-like) delegating to a
	// render target or an inner type.
	KindWrapped
)

// Origin is a render node's declared source origin, when the host runtime
// recorded one.
type Origin struct {
	File string
	Line int
}

// Element is the read-only view of a render node's element type.
type Element struct {
	Kind        Kind
	Name        string
	DisplayName string
	Tag         string
	// RenderTarget is the wrapped render function of a KindWrapped element.
	RenderTarget *Element
	// Inner is the wrapped inner type of a KindWrapped element.
	Inner *Element
}

// Node is the adapter interface over one host-owned render node. The core
// only reads through it and holds references only for the duration of one
// walk. Implementations must be comparable (pointer types) so the walker's
// identity-based cycle guard works.
type Node interface {
	Element() Element
	Source() *Origin
	Parent() Node
	Owner() Node
}

// resolveName resolves a human-readable name for an element, in priority
// order: display-name field, declared name, wrapped render target, wrapped
// inner type recursively, plain string tag name.
func resolveName(el Element) string {
	if el.DisplayName != "" {
		return el.DisplayName
	}
	if el.Name != "" {
		return el.Name
	}
	if el.RenderTarget != nil {
		if name := resolveName(*el.RenderTarget); name != "" {
			return name
		}
	}
	if el.Inner != nil {
		if name := resolveName(*el.Inner); name != "" {
			return name
		}
	}
	return el.Tag
}
