// Package extract turns focused UI nodes into spoken descriptions. Each
// extractor recognizes one category of node and either declines or produces
// text; the chain tries them in a fixed priority order and stops at the
// first answer.
package extract

import (
	"io"
	"log/slog"

	"github.com/railspeak/railspeak/announce"
	"github.com/railspeak/railspeak/keywords"
	"github.com/railspeak/railspeak/locale"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// Context carries the collaborators extractors read and update. It is built
// once by the engine and shared across ticks.
type Context struct {
	Resolver   locale.Resolver
	Annotator  *keywords.Annotator
	State      *announce.State
	Visibility *locate.Visibility
	Log        *slog.Logger

	// InBattle reports whether a battle is in progress; some extractors
	// phrase output differently outside battle. Nil means never.
	InBattle func() bool

	// AnnounceCap limits the width of first announcements of long
	// content. Zero applies the markup default.
	AnnounceCap int
}

// Localize resolves a possible localization key to display text.
func (c *Context) Localize(s string) string {
	if c == nil {
		return s
	}
	return locale.Localize(c.Resolver, s)
}

// Speakable localizes and then normalizes markup in one step.
func (c *Context) Speakable(s string) string {
	return markup.Clean(c.Localize(s))
}

// Annotate appends keyword definitions when an annotator is configured.
func (c *Context) Annotate(s string) string {
	if c == nil || c.Annotator == nil {
		return s
	}
	return c.Annotator.Annotate(s)
}

func (c *Context) inBattle() bool {
	return c != nil && c.InBattle != nil && c.InBattle()
}

func (c *Context) logger() *slog.Logger {
	if c == nil || c.Log == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return c.Log
}

func (c *Context) state() *announce.State {
	if c == nil || c.State == nil {
		return nil
	}
	return c.State
}

func (c *Context) visibility() *locate.Visibility {
	if c == nil || c.Visibility == nil {
		return locate.NewVisibility()
	}
	return c.Visibility
}
