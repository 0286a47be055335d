package extract

import (
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
)

// MapNode describes a generic map stop through its attached node-data
// object, dispatching on the data's declared type. Raw tooltip text is the
// fallback when no structured data is present.
type MapNode struct{}

// Name implements Extractor.
func (MapNode) Name() string { return "map-node" }

// TryExtract implements Extractor.
func (MapNode) TryExtract(n host.Node, ctx *Context) (string, bool) {
	mapNode, c, ok := locate.FindAncestorCapability(n, "mapnode", 2)
	if !ok {
		return "", false
	}
	data, found := introspect.Read(c.Handle(), "nodeData", "data", "GetNodeData")
	if found && data != nil {
		if text := describeNodeData(data, ctx); text != "" {
			return text, true
		}
	}
	if title, body, hasTip := tooltipText(mapNode, ctx); hasTip {
		return sentence(title, body), true
	}
	return "Map node", true
}

func describeNodeData(data any, ctx *Context) string {
	kind, _ := readText(data, "type", "nodeType", "kind")
	if strings.Contains(strings.ToLower(kind), "battle") {
		name, _ := readText(data, "enemyName", "battleName", "title")
		desc, _ := readText(data, "description", "battleDescription")
		return sentence("Battle: "+ctx.Speakable(name), ctx.Speakable(desc))
	}
	name, hasName := readText(data, "title", "name", "titleKey")
	desc, _ := readText(data, "description", "descriptionKey")
	if !hasName && desc == "" {
		return ""
	}
	parts := []string{ctx.Speakable(name), ctx.Speakable(desc)}
	if kind != "" {
		parts = append(parts, ctx.Speakable(kind)+" node")
	}
	return sentence(parts...)
}
