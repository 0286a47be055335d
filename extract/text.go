package extract

import (
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// stringish coerces a probed member value that may be a plain string or a
// text-bearing object.
func stringish(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := introspect.AsString(v); ok {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	if s, ok := introspect.ReadString(v, "text", "label", "value", "caption"); ok {
		s = strings.TrimSpace(s)
		return s, s != ""
	}
	return "", false
}

// readText probes an opaque handle for a string member under the candidate
// names, accepting nested text-bearing objects.
func readText(handle any, names ...string) (string, bool) {
	v, ok := introspect.Read(handle, names...)
	if !ok {
		return "", false
	}
	return stringish(v)
}

// labelOf returns the best short label for a node: its own display text if
// any, otherwise its cleaned name.
func labelOf(n host.Node) string {
	if s, ok := locate.Text(n); ok {
		return s
	}
	return markup.CleanName(n.Name())
}

// tooltipText reads title and body off a tooltip-provider capability
// attached to or under the node.
func tooltipText(n host.Node, ctx *Context) (title, body string, ok bool) {
	_, c, found := locate.FindDescendantCapability(n, "tooltip")
	if !found {
		return "", "", false
	}
	title, _ = readText(c.Handle(), "title", "header", "tooltipTitle")
	body, _ = readText(c.Handle(), "body", "description", "tooltipBody", "content")
	title = ctx.Speakable(title)
	body = ctx.Speakable(body)
	return title, body, title != "" || body != ""
}

// sentence joins non-empty parts with ". " and closes with a period.
func sentence(parts ...string) string {
	var kept []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		p = strings.TrimSuffix(p, ".")
		if p != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return strings.Join(kept, ". ") + "."
}
