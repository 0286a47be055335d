package extract

import (
	"fmt"
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
)

// MinimapMarker describes a node on the route minimap: its ring and
// position, what kind of stop it is, the tooltip, and which sibling paths
// are open from here.
type MinimapMarker struct{}

// Name implements Extractor.
func (MinimapMarker) Name() string { return "minimap-marker" }

// TryExtract implements Extractor.
func (MinimapMarker) TryExtract(n host.Node, ctx *Context) (string, bool) {
	markerNode, c, ok := locate.FindAncestorCapability(n, "minimapmarker", 2)
	if !ok {
		return "", false
	}
	handle := c.Handle()
	var parts []string

	ring, hasRing := introspect.ReadInt(handle, "ring", "ringIndex")
	pos, hasPos := introspect.ReadInt(handle, "position", "column")
	switch {
	case hasRing && hasPos:
		parts = append(parts, fmt.Sprintf("Ring %d, position %d", ring, pos))
	case hasRing:
		parts = append(parts, fmt.Sprintf("Ring %d", ring))
	}

	if kind, found := readText(handle, "nodeType", "markerType", "kind"); found {
		parts = append(parts, ctx.Speakable(kind)+" node")
	}
	if current, found := introspect.ReadBool(handle, "isCurrent", "current", "isPlayerHere"); found && current {
		parts = append(parts, "Current position")
	}
	if title, body, found := tooltipText(markerNode, ctx); found {
		parts = append(parts, title, body)
	}
	if dirs := siblingDirections(markerNode); len(dirs) > 0 {
		parts = append(parts, "Paths available: "+strings.Join(dirs, ", "))
	}
	if len(parts) == 0 {
		return "Map node", true
	}
	return sentence(parts...), true
}

// siblingDirections scans the marker's section for active sibling markers
// named for a direction.
func siblingDirections(markerNode host.Node) []string {
	var dirs []string
	for _, dir := range []string{"left", "center", "right"} {
		for _, sib := range locate.Siblings(markerNode) {
			if !sib.ActiveSelf() || !host.HasCapability(sib, "minimapmarker") {
				continue
			}
			if locate.NameContains(sib, dir) {
				dirs = append(dirs, dir)
				break
			}
		}
	}
	return dirs
}
