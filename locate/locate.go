// Package locate provides bounded upward and downward search over a host
// view-tree. Every walk in the engine goes through here so that depth limits
// stay explicit and in one place.
package locate

import (
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
)

// Walk depth limits. Host hierarchies can be deep or look cyclic through
// stale references; every traversal is bounded.
const (
	// MaxAncestorDepth bounds generic upward walks.
	MaxAncestorDepth = 8

	// MaxDialogAncestorDepth bounds the search for an enclosing dialog.
	MaxDialogAncestorDepth = 5

	// MaxDescendantDepth bounds downward capability searches.
	MaxDescendantDepth = 10

	// MaxVisibilityDepth bounds the root-ward visibility walk.
	MaxVisibilityDepth = 32
)

// FindAncestorCapability walks from node toward the root, at most maxDepth
// steps, returning the first ancestor (including the node itself) carrying a
// capability matching typeName.
func FindAncestorCapability(n host.Node, typeName string, maxDepth int) (host.Node, host.Capability, bool) {
	if maxDepth <= 0 {
		maxDepth = MaxAncestorDepth
	}
	cur := n
	for depth := 0; cur != nil && depth <= maxDepth; depth++ {
		if c, ok := host.FindCapability(cur, typeName); ok {
			return cur, c, true
		}
		cur = cur.Parent()
	}
	return nil, nil, false
}

// FindDescendantCapability searches the subtree under node, depth-first and
// depth-bounded, for the first node carrying a matching capability.
func FindDescendantCapability(n host.Node, typeName string) (host.Node, host.Capability, bool) {
	return findDescendant(n, typeName, 0)
}

func findDescendant(n host.Node, typeName string, depth int) (host.Node, host.Capability, bool) {
	if n == nil || depth > MaxDescendantDepth {
		return nil, nil, false
	}
	if c, ok := host.FindCapability(n, typeName); ok {
		return n, c, true
	}
	for _, child := range n.Children() {
		if found, c, ok := findDescendant(child, typeName, depth+1); ok {
			return found, c, ok
		}
	}
	return nil, nil, false
}

// FindCapabilityAround probes the node itself, then its descendants, then
// its ancestors — the common discovery order for extractors that may sit on
// any part of a composite control.
func FindCapabilityAround(n host.Node, typeName string, maxAncestors int) (host.Node, host.Capability, bool) {
	if node, c, ok := FindDescendantCapability(n, typeName); ok {
		return node, c, ok
	}
	if n == nil {
		return nil, nil, false
	}
	return FindAncestorCapability(n.Parent(), typeName, maxAncestors)
}

// Text returns the display text attached to a node, read from the first
// text-bearing capability.
func Text(n host.Node) (string, bool) {
	if n == nil {
		return "", false
	}
	c, ok := host.FindCapability(n, "text")
	if !ok {
		return "", false
	}
	s, ok := introspect.ReadString(c.Handle(), "text", "Text", "value")
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// CollectText gathers non-empty display text from the subtree under node,
// in document order, from active nodes only.
func CollectText(n host.Node) []string {
	var out []string
	collectText(n, 0, &out)
	return out
}

func collectText(n host.Node, depth int, out *[]string) {
	if n == nil || depth > MaxDescendantDepth || !n.ActiveSelf() {
		return
	}
	if s, ok := Text(n); ok {
		*out = append(*out, s)
	}
	for _, child := range n.Children() {
		collectText(child, depth+1, out)
	}
}

// JoinedText collects subtree text and joins it into one utterance.
func JoinedText(n host.Node) string {
	return strings.Join(CollectText(n), ". ")
}

// NameContains reports whether the node's lowercased name contains sub.
func NameContains(n host.Node, sub string) bool {
	if n == nil {
		return false
	}
	return strings.Contains(strings.ToLower(n.Name()), strings.ToLower(sub))
}

// AncestorNamed walks upward looking for a node whose name contains sub.
func AncestorNamed(n host.Node, sub string, maxDepth int) (host.Node, bool) {
	if maxDepth <= 0 {
		maxDepth = MaxAncestorDepth
	}
	cur := n
	for depth := 0; cur != nil && depth <= maxDepth; depth++ {
		if NameContains(cur, sub) {
			return cur, true
		}
		cur = cur.Parent()
	}
	return nil, false
}

// Siblings returns the other children of the node's parent.
func Siblings(n host.Node) []host.Node {
	if n == nil || n.Parent() == nil {
		return nil
	}
	var out []host.Node
	for _, c := range n.Parent().Children() {
		if c != n {
			out = append(out, c)
		}
	}
	return out
}
