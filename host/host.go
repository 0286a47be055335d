// Package host defines the boundary to the application whose UI tree the
// engine inspects. Nodes are borrowed references into a live view-tree the
// engine does not own: they are valid for the current tick only and may be
// destroyed or replaced by the host without notice.
package host

import "strings"

// Node is a position in the host's live view-tree.
type Node interface {
	// Name returns the node's name as assigned by the host.
	Name() string

	// ActiveSelf reports whether the node itself is enabled.
	ActiveSelf() bool

	// ActiveInHierarchy reports whether the node and all its ancestors
	// are enabled.
	ActiveInHierarchy() bool

	// Parent returns the parent node, or nil at the root.
	Parent() Node

	// Children returns the node's direct children.
	Children() []Node

	// Capabilities returns the opaque typed objects attached to the node.
	Capabilities() []Capability
}

// Capability is an opaque object attached to a node. Its shape is unknown
// until probed; only the type name is discoverable up front.
type Capability interface {
	// TypeName returns the capability's runtime type name.
	TypeName() string

	// Handle returns the opaque object for introspection.
	Handle() any
}

// Positioned is implemented by nodes that can report a screen-space
// position. Hosts that cannot are simply never asked.
type Positioned interface {
	ScreenX() float64
	ScreenY() float64
}

// Tree is the inbound query surface against the host.
type Tree interface {
	// FocusedNode returns the node currently holding input focus, or nil.
	FocusedNode() Node

	// SceneRoots returns the roots of the active scene.
	SceneRoots() []Node
}

// MatchesType reports whether a capability's type name matches the given
// name. Matching is case-insensitive and accepts the short name or any
// substring of the full name, since host type names carry unknowable
// namespace prefixes.
func MatchesType(c Capability, typeName string) bool {
	if c == nil || typeName == "" {
		return false
	}
	have := strings.ToLower(c.TypeName())
	want := strings.ToLower(typeName)
	if have == want {
		return true
	}
	return strings.Contains(have, want)
}

// FindCapability returns the first capability on the node whose type name
// matches typeName.
func FindCapability(n Node, typeName string) (Capability, bool) {
	if n == nil {
		return nil, false
	}
	for _, c := range n.Capabilities() {
		if MatchesType(c, typeName) {
			return c, true
		}
	}
	return nil, false
}

// HasCapability reports whether the node carries a matching capability.
func HasCapability(n Node, typeName string) bool {
	_, ok := FindCapability(n, typeName)
	return ok
}
