package extract

import (
	"fmt"
	"log/slog"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/markup"
)

// Extractor recognizes one category of UI node.
type Extractor interface {
	// Name identifies the extractor in logs.
	Name() string

	// TryExtract returns descriptive text for the node, or ok=false when
	// the node doesn't match this extractor's pattern.
	TryExtract(n host.Node, ctx *Context) (text string, ok bool)
}

// Chain is the ordered list of extractors. It short-circuits at the first
// extractor returning non-empty text; at most one description is produced
// per call.
type Chain struct {
	extractors []Extractor
}

// NewChain builds a chain from extractors in priority order.
func NewChain(extractors ...Extractor) *Chain {
	return &Chain{extractors: extractors}
}

// Default returns the standard chain. Scrollable content and the
// run-opening screen come before generic dialog, card, and shop logic; the
// unconditional name fallback is always last.
func Default() *Chain {
	return NewChain(
		ScrollContent{},
		RunIntro{},
		DialogButton{},
		Card{},
		MinimapMarker{},
		MapNode{},
		ShopGoods{},
		ShopService{},
		SettingsControl{},
		TrialToggle{},
		ClanChoice{},
		BranchChoice{},
		Relic{},
		StoryEventChoice{},
		NameFallback{},
	)
}

// Extractors returns the chain's extractors in order.
func (c *Chain) Extractors() []Extractor {
	if c == nil {
		return nil
	}
	return c.extractors
}

// Describe runs the chain for a focused node. A failing extractor is logged
// and treated as no-match; the chain never panics past this boundary and
// never returns empty text for a node with a non-empty name.
func (c *Chain) Describe(n host.Node, ctx *Context) string {
	if c == nil || n == nil {
		return ""
	}
	for _, ex := range c.extractors {
		if text, ok := tryOne(ex, n, ctx); ok && text != "" {
			return text
		}
	}
	return markup.CleanName(n.Name())
}

func tryOne(ex Extractor, n host.Node, ctx *Context) (text string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ctx.logger().Error("extractor failed",
				slog.String("extractor", ex.Name()),
				slog.String("node", n.Name()),
				slog.String("error", fmt.Sprint(r)))
			text, ok = "", false
		}
	}()
	return ex.TryExtract(n, ctx)
}
