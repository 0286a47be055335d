package extract

import (
	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// NameFallback is the unconditional last extractor: it always produces some
// non-empty text for a node with a non-empty name. Very short direct text is
// treated as an icon glyph and replaced or given context from nearby labels.
type NameFallback struct{}

// Name implements Extractor.
func (NameFallback) Name() string { return "name-fallback" }

// TryExtract implements Extractor.
func (NameFallback) TryExtract(n host.Node, ctx *Context) (string, bool) {
	cleaned := markup.CleanName(n.Name())
	text, hasText := locate.Text(n)
	if !hasText {
		if text = locate.JoinedText(n); text == "" {
			return ctx.Speakable(cleaned), cleaned != ""
		}
		return ctx.Speakable(text), true
	}
	runes := []rune(text)
	switch {
	case len(runes) <= 2:
		// Likely an icon glyph; the node name says more.
		if cleaned != "" {
			return ctx.Speakable(cleaned), true
		}
		return ctx.Speakable(text), true
	case len(runes) <= 4:
		if context, found := nearbyLabel(n); found {
			return ctx.Speakable(text + ", " + context), true
		}
	}
	return ctx.Speakable(text), true
}

// nearbyLabel searches sibling and parent text for a longer contextual
// label to pair with a very short direct text.
func nearbyLabel(n host.Node) (string, bool) {
	for _, sib := range locate.Siblings(n) {
		if !sib.ActiveSelf() {
			continue
		}
		if text, ok := locate.Text(sib); ok && len([]rune(text)) > 4 {
			return text, true
		}
	}
	if p := n.Parent(); p != nil {
		if text, ok := locate.Text(p); ok && len([]rune(text)) > 4 {
			return text, true
		}
	}
	return "", false
}
