// Package fake provides an in-memory host tree for tests and examples.
package fake

import (
	"reflect"
	"strings"

	"github.com/railspeak/railspeak/host"
)

// Node is a buildable host.Node.
type Node struct {
	name     string
	active   bool
	parent   *Node
	children []*Node
	caps     []host.Capability
	x, y     float64
	placed   bool
}

// Option configures a Node at construction.
type Option func(*Node)

// NewNode creates an active node with the given name.
func NewNode(name string, opts ...Option) *Node {
	n := &Node{name: name, active: true}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// WithCapability attaches a capability whose type name is derived from the
// handle's dynamic type.
func WithCapability(handle any) Option {
	return func(n *Node) {
		n.caps = append(n.caps, Cap("", handle))
	}
}

// WithNamedCapability attaches a capability with an explicit type name.
func WithNamedCapability(typeName string, handle any) Option {
	return func(n *Node) {
		n.caps = append(n.caps, Cap(typeName, handle))
	}
}

// WithChildren attaches child nodes.
func WithChildren(children ...*Node) Option {
	return func(n *Node) {
		for _, c := range children {
			n.AddChild(c)
		}
	}
}

// WithInactive marks the node disabled.
func WithInactive() Option {
	return func(n *Node) {
		n.active = false
	}
}

// WithPosition gives the node a screen-space position.
func WithPosition(x, y float64) Option {
	return func(n *Node) {
		n.x, n.y = x, y
		n.placed = true
	}
}

// AddChild attaches a child and returns it for chaining.
func (n *Node) AddChild(c *Node) *Node {
	c.parent = n
	n.children = append(n.children, c)
	return c
}

// Attach adds a capability after construction.
func (n *Node) Attach(typeName string, handle any) *Node {
	n.caps = append(n.caps, Cap(typeName, handle))
	return n
}

// SetActive toggles the node's own active flag.
func (n *Node) SetActive(active bool) {
	n.active = active
}

// Name implements host.Node.
func (n *Node) Name() string { return n.name }

// ActiveSelf implements host.Node.
func (n *Node) ActiveSelf() bool { return n.active }

// ActiveInHierarchy implements host.Node.
func (n *Node) ActiveInHierarchy() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.active {
			return false
		}
	}
	return true
}

// Parent implements host.Node.
func (n *Node) Parent() host.Node {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

// Children implements host.Node.
func (n *Node) Children() []host.Node {
	out := make([]host.Node, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

// Capabilities implements host.Node.
func (n *Node) Capabilities() []host.Capability {
	return n.caps
}

// ScreenX implements host.Positioned for placed nodes.
func (n *Node) ScreenX() float64 { return n.x }

// ScreenY implements host.Positioned for placed nodes.
func (n *Node) ScreenY() float64 { return n.y }

// Placed reports whether the node was given a position.
func (n *Node) Placed() bool { return n.placed }

type capability struct {
	typeName string
	handle   any
}

// Cap builds a capability. An empty typeName is derived from the handle's
// dynamic type, with pointer and package prefixes stripped.
func Cap(typeName string, handle any) host.Capability {
	if typeName == "" {
		typeName = typeNameOf(handle)
	}
	return capability{typeName: typeName, handle: handle}
}

func (c capability) TypeName() string { return c.typeName }
func (c capability) Handle() any      { return c.handle }

func typeNameOf(handle any) string {
	t := reflect.TypeOf(handle)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	name := t.Name()
	if name == "" {
		name = t.String()
	}
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Tree is a buildable host.Tree.
type Tree struct {
	roots   []*Node
	focused host.Node
}

// NewTree creates a tree with the given roots.
func NewTree(roots ...*Node) *Tree {
	return &Tree{roots: roots}
}

// SetFocus moves input focus to the given node (nil clears focus).
func (t *Tree) SetFocus(n host.Node) {
	t.focused = n
}

// FocusedNode implements host.Tree.
func (t *Tree) FocusedNode() host.Node {
	return t.focused
}

// SceneRoots implements host.Tree.
func (t *Tree) SceneRoots() []host.Node {
	out := make([]host.Node, len(t.roots))
	for i, r := range t.roots {
		out[i] = r
	}
	return out
}

// AddRoot attaches another scene root.
func (t *Tree) AddRoot(n *Node) *Node {
	t.roots = append(t.roots, n)
	return n
}
