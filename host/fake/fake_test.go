package fake

import (
	"testing"

	"github.com/railspeak/railspeak/host"
)

type button struct{}

func TestNode_Hierarchy(t *testing.T) {
	child := NewNode("Child")
	parent := NewNode("Parent", WithChildren(child))

	if child.Parent() != host.Node(parent) {
		t.Fatalf("expected parent link")
	}
	kids := parent.Children()
	if len(kids) != 1 || kids[0].Name() != "Child" {
		t.Fatalf("unexpected children %v", kids)
	}
}

func TestNode_Activation(t *testing.T) {
	child := NewNode("Child")
	parent := NewNode("Parent", WithChildren(child))

	if !child.ActiveInHierarchy() {
		t.Fatalf("expected active hierarchy")
	}
	parent.SetActive(false)
	if child.ActiveSelf() != true {
		t.Fatalf("expected own flag untouched")
	}
	if child.ActiveInHierarchy() {
		t.Fatalf("expected inactive ancestor to disable the hierarchy")
	}
}

func TestCap_DerivesTypeName(t *testing.T) {
	n := NewNode("X", WithCapability(&button{}))
	c, ok := host.FindCapability(n, "button")
	if !ok {
		t.Fatalf("expected derived type name to match")
	}
	if c.TypeName() != "button" {
		t.Fatalf("unexpected type name %q", c.TypeName())
	}
}

func TestTree_FocusAndRoots(t *testing.T) {
	root := NewNode("Root")
	tree := NewTree(root)
	if tree.FocusedNode() != nil {
		t.Fatalf("expected no initial focus")
	}
	tree.SetFocus(root)
	if tree.FocusedNode() != host.Node(root) {
		t.Fatalf("expected focus on root")
	}
	extra := tree.AddRoot(NewNode("Overlay"))
	roots := tree.SceneRoots()
	if len(roots) != 2 || roots[1] != host.Node(extra) {
		t.Fatalf("unexpected roots %v", roots)
	}
}
