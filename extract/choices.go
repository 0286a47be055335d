package extract

import (
	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// The extractors in this file share one shape: locate a marker capability,
// read structured fields under several candidate names, localize and
// normalize, and fall back to a generic category label so a recognized
// category never produces nothing.

// TrialToggle describes an optional trial or challenge modifier toggle.
type TrialToggle struct{}

// Name implements Extractor.
func (TrialToggle) Name() string { return "trial-toggle" }

// TryExtract implements Extractor.
func (TrialToggle) TryExtract(n host.Node, ctx *Context) (string, bool) {
	_, c, ok := locate.FindCapabilityAround(n, "trialtoggle", 3)
	if !ok {
		_, c, ok = locate.FindCapabilityAround(n, "challengetoggle", 3)
	}
	if !ok {
		return "", false
	}
	name, _ := readText(c.Handle(), "title", "name", "trialName")
	desc, _ := readText(c.Handle(), "description", "effect")
	state := ""
	if on, found := introspect.ReadBool(c.Handle(), "isOn", "enabled", "selected"); found {
		if on {
			state = "Enabled"
		} else {
			state = "Disabled"
		}
	}
	text := sentence(ctx.Speakable(name), ctx.Annotate(ctx.Speakable(desc)), state)
	if text == "" {
		return "Trial option", true
	}
	return text, true
}

// ClanChoice describes a clan or champion selection entry.
type ClanChoice struct{}

// Name implements Extractor.
func (ClanChoice) Name() string { return "clan-choice" }

// TryExtract implements Extractor.
func (ClanChoice) TryExtract(n host.Node, ctx *Context) (string, bool) {
	_, c, ok := locate.FindCapabilityAround(n, "clanselect", 3)
	if ok {
		name, _ := readText(c.Handle(), "clanName", "title", "name")
		desc, _ := readText(c.Handle(), "description", "clanDescription")
		if text := sentence(ctx.Speakable(name), ctx.Speakable(desc)); text != "" {
			return text, true
		}
		return "Clan option", true
	}
	_, c, ok = locate.FindCapabilityAround(n, "championselect", 3)
	if !ok {
		return "", false
	}
	name, _ := readText(c.Handle(), "championName", "title", "name")
	desc, _ := readText(c.Handle(), "description", "abilityDescription")
	if text := sentence(ctx.Speakable(name), ctx.Annotate(ctx.Speakable(desc))); text != "" {
		return text, true
	}
	return "Champion option", true
}

// BranchChoice describes a fork in the route: left or right path previews.
type BranchChoice struct{}

// Name implements Extractor.
func (BranchChoice) Name() string { return "branch-choice" }

// TryExtract implements Extractor.
func (BranchChoice) TryExtract(n host.Node, ctx *Context) (string, bool) {
	node, c, ok := locate.FindCapabilityAround(n, "pathchoice", 3)
	if !ok {
		node, c, ok = locate.FindCapabilityAround(n, "branchnode", 3)
	}
	if !ok {
		return "", false
	}
	name, _ := readText(c.Handle(), "title", "pathName", "name")
	desc, _ := readText(c.Handle(), "description", "preview")
	direction := ""
	for _, d := range []string{"left", "right"} {
		if locate.NameContains(node, d) {
			direction = d + " path"
			break
		}
	}
	text := sentence(direction, ctx.Speakable(name), ctx.Speakable(desc))
	if text == "" {
		return "Map path option", true
	}
	return text, true
}

// Relic describes a relic or artifact wherever one is focused.
type Relic struct{}

// Name implements Extractor.
func (Relic) Name() string { return "relic" }

// TryExtract implements Extractor.
func (Relic) TryExtract(n host.Node, ctx *Context) (string, bool) {
	_, c, ok := locate.FindCapabilityAround(n, "relic", 4)
	if !ok {
		_, c, ok = locate.FindCapabilityAround(n, "artifact", 4)
	}
	if !ok {
		return "", false
	}
	state := c.Handle()
	if inner, found := introspect.Read(state, "relicState", "state"); found && inner != nil {
		state = inner
	}
	if text := describeRelicState(state, ctx); text != "" {
		return text, true
	}
	return "Relic", true
}

func describeRelicState(state any, ctx *Context) string {
	name, ok := readText(state, "title", "name", "relicName")
	if !ok {
		return ""
	}
	desc, _ := readText(state, "description", "relicDescription", "effect")
	return sentence(ctx.Speakable(name)+" (Relic)", ctx.Annotate(ctx.Speakable(desc)))
}

// StoryEventChoice describes one selectable choice inside a story event.
type StoryEventChoice struct{}

// Name implements Extractor.
func (StoryEventChoice) Name() string { return "story-event-choice" }

// TryExtract implements Extractor.
func (StoryEventChoice) TryExtract(n host.Node, ctx *Context) (string, bool) {
	node, c, ok := locate.FindCapabilityAround(n, "eventchoice", 3)
	if !ok {
		node, c, ok = locate.FindCapabilityAround(n, "storyoption", 3)
	}
	if !ok {
		return "", false
	}
	choice, _ := readText(c.Handle(), "choiceText", "label", "title")
	consequence, _ := readText(c.Handle(), "consequence", "rewardText", "description")
	text := sentence(ctx.Speakable(choice), ctx.Annotate(ctx.Speakable(consequence)))
	if text != "" {
		return text, true
	}
	if label := markup.CleanName(node.Name()); label != "" {
		return "Event choice: " + label, true
	}
	return "Event choice", true
}
