package extract

import (
	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// ScrollContent reads the full text of a scroll view when its scrollbar
// takes focus. The first announcement is capped; later growth is handled by
// the passive content scan against the remembered content.
type ScrollContent struct{}

// Name implements Extractor.
func (ScrollContent) Name() string { return "scroll-content" }

// TryExtract implements Extractor.
func (ScrollContent) TryExtract(n host.Node, ctx *Context) (string, bool) {
	if !isScrollbar(n) {
		return "", false
	}
	content := scrollContentOf(n)
	if content == "" {
		return "", false
	}
	if s := ctx.state(); s != nil {
		s.RememberScroll(content)
	}
	limit := 0
	if ctx != nil {
		limit = ctx.AnnounceCap
	}
	return markup.Truncate(markup.Clean(content), limit), true
}

func isScrollbar(n host.Node) bool {
	return host.HasCapability(n, "scrollbar") || locate.NameContains(n, "scrollbar")
}

// scrollContentOf finds the text belonging to the scroll view the scrollbar
// controls: the nearest scroll-rect ancestor's subtree, or failing that the
// scrollbar's parent subtree.
func scrollContentOf(n host.Node) string {
	if owner, _, ok := locate.FindAncestorCapability(n, "scrollrect", 4); ok {
		return locate.JoinedText(owner)
	}
	if p := n.Parent(); p != nil {
		return locate.JoinedText(p)
	}
	return ""
}

// ScrollContentFor exposes the content lookup to the passive scan: given the
// currently focused node, it returns the scroll content text when focus is
// on a scrollbar.
func ScrollContentFor(n host.Node) (string, bool) {
	if n == nil || !isScrollbar(n) {
		return "", false
	}
	content := scrollContentOf(n)
	return content, content != ""
}
