package extract

import (
	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
)

// RunIntro describes the run-opening screen that previews the bosses ahead.
// It enumerates the screen's boss detail entries and reads a title and a
// name per entry, preferring direct text over tooltip fields.
type RunIntro struct{}

// Name implements Extractor.
func (RunIntro) Name() string { return "run-intro" }

// TryExtract implements Extractor.
func (RunIntro) TryExtract(n host.Node, ctx *Context) (string, bool) {
	_, c, ok := locate.FindAncestorCapability(n, "runintroscreen", locate.MaxAncestorDepth)
	if !ok {
		return "", false
	}
	details, ok := introspect.ReadSlice(c.Handle(), "bossDetails", "BossDetails", "bosses")
	if !ok || len(details) == 0 {
		return "", false
	}
	var parts []string
	for _, d := range details {
		title, _ := readText(d, "title", "titleLabel", "header")
		name, hasName := readText(d, "name", "bossName")
		if !hasName {
			// Tooltip-provider fields are the fallback when the
			// entry carries no direct text.
			if tip, found := introspect.Read(d, "tooltip", "tooltipData"); found {
				name, _ = readText(tip, "title", "tooltipTitle")
			}
		}
		title = ctx.Speakable(title)
		name = ctx.Speakable(name)
		switch {
		case title != "" && name != "":
			parts = append(parts, title+": "+name)
		case name != "":
			parts = append(parts, name)
		case title != "":
			parts = append(parts, title)
		}
	}
	if len(parts) == 0 {
		return "", false
	}
	parts = append(parts, "Press confirm to begin the run")
	return sentence(parts...), true
}
