package extract

import (
	"fmt"
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// Card describes a card wherever one is focused: in hand, in a reward
// screen, or in the deck view. The card capability may sit on the focused
// node itself, a descendant, or an ancestor.
type Card struct{}

// Name implements Extractor.
func (Card) Name() string { return "card" }

// TryExtract implements Extractor.
func (Card) TryExtract(n host.Node, ctx *Context) (string, bool) {
	cardNode, c, ok := locate.FindCapabilityAround(n, "card", 6)
	if !ok {
		return "", false
	}
	state := cardState(c.Handle())
	text := DescribeCardState(state, ctx)
	if text == "" {
		return "", false
	}
	if !ctx.inBattle() {
		if label, found := upgradePathLabel(cardNode); found {
			text = ctx.Speakable(label) + ", upgrade path. " + text
		}
	}
	return text, true
}

// cardState unwraps the underlying card-state object; some hosts attach the
// state directly, others wrap it in a presenter.
func cardState(handle any) any {
	if state, ok := introspect.Read(handle, "cardState", "CardState", "state"); ok && state != nil {
		return state
	}
	return handle
}

// DescribeCardState renders a card-state object as
// "Name (Type), Clan, Cost ember. Description. Attack X, Health Y.
// Keyword: definition." Keyword definitions come from three layered
// sources: explicit tooltip data, status-effect ids against the glossary,
// and plain-text scanning of the assembled description.
func DescribeCardState(state any, ctx *Context) string {
	name, ok := readText(state, "title", "name", "cardName")
	if !ok {
		return ""
	}
	name = ctx.Speakable(name)

	var head strings.Builder
	head.WriteString(name)
	cardType := cardTypeOf(state)
	if cardType != "" {
		head.WriteString(" (" + cardType + ")")
	}
	if clan, found := readText(state, "clan", "clanName", "linkedClan"); found {
		head.WriteString(", " + ctx.Speakable(clan))
	}
	if cost, found := introspect.ReadInt(state, "cost", "emberCost", "GetCost"); found {
		head.WriteString(fmt.Sprintf(", %d ember", cost))
	}

	desc := ""
	if raw, found := readText(state, "description", "descriptionKey", "cardText"); found {
		desc = markup.CleanParams(ctx.Localize(raw), effectParams(state))
	}

	stats := ""
	if isUnitType(cardType) {
		attack, hasAttack := introspect.ReadInt(state, "attack", "damage", "GetAttack")
		health, hasHealth := introspect.ReadInt(state, "health", "hp", "GetHealth")
		if hasAttack || hasHealth {
			stats = fmt.Sprintf("Attack %d, Health %d", attack, health)
		}
	}

	keywordText := cardKeywords(state, desc, ctx)
	return sentence(head.String(), desc, stats, keywordText)
}

func cardTypeOf(state any) string {
	v, ok := introspect.Read(state, "cardType", "type", "GetCardType")
	if !ok {
		return ""
	}
	if s, found := introspect.AsString(v); found {
		return s
	}
	if i, found := introspect.AsInt(v); found {
		switch i {
		case 0:
			return "Spell"
		case 1:
			return "Unit"
		case 2:
			return "Blight"
		case 3:
			return "Equipment"
		}
	}
	return ""
}

func isUnitType(cardType string) bool {
	t := strings.ToLower(cardType)
	return strings.Contains(t, "unit") || strings.Contains(t, "monster")
}

// effectParams collects numeric effect values so description templates like
// {[effect0.power]} can be substituted.
func effectParams(state any) map[string]string {
	params := make(map[string]string)
	if power, ok := introspect.ReadInt(state, "magicPower", "power"); ok {
		params["power"] = fmt.Sprint(power)
	}
	effects, ok := introspect.ReadSlice(state, "effects", "effectValues", "GetEffects")
	if !ok {
		return params
	}
	for i, eff := range effects {
		if v, found := introspect.ReadInt(eff, "paramInt", "value", "power"); found {
			params[fmt.Sprintf("effect%d.power", i)] = fmt.Sprint(v)
			params[fmt.Sprint(i)] = fmt.Sprint(v)
		} else if v, found := introspect.AsInt(eff); found {
			params[fmt.Sprint(i)] = fmt.Sprint(v)
		}
	}
	return params
}

// cardKeywords assembles keyword definitions from tooltip data, then
// status-effect ids, then description text, skipping names already covered
// by an earlier source.
func cardKeywords(state any, desc string, ctx *Context) string {
	seen := make(map[string]struct{})
	var parts []string
	add := func(name, definition string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" || definition == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		parts = append(parts, strings.TrimSuffix(name, ":")+": "+definition)
	}

	if tips, ok := introspect.ReadSlice(state, "tooltips", "tooltipData", "keywordTooltips"); ok {
		for _, tip := range tips {
			title, _ := readText(tip, "title", "header", "keyword")
			body, _ := readText(tip, "body", "description", "text")
			add(ctx.Speakable(title), ctx.Speakable(body))
		}
	}

	if ctx != nil && ctx.Annotator != nil {
		if ids, ok := introspect.ReadSlice(state, "statusEffects", "statusEffectIds", "statusIds"); ok {
			for _, raw := range ids {
				id, found := introspect.AsString(raw)
				if !found {
					id, _ = readText(raw, "id", "statusId", "name")
				}
				if term, found := ctx.Annotator.Term(id); found {
					add(term.Name, term.Definition)
				}
			}
		}
		for _, term := range ctx.Annotator.FindTerms(desc) {
			add(term.Name, term.Definition)
		}
	}

	return strings.Join(parts, ". ")
}

// upgradePathLabel looks for a short title-like text element positioned
// above the card in screen space; upgrade screens label each path that way.
func upgradePathLabel(cardNode host.Node) (string, bool) {
	cardPos, ok := cardNode.(host.Positioned)
	if !ok {
		return "", false
	}
	for _, sib := range locate.Siblings(cardNode) {
		pos, placed := sib.(host.Positioned)
		if !placed || pos.ScreenY() <= cardPos.ScreenY() {
			continue
		}
		text, found := locate.Text(sib)
		if !found || len(text) > 32 || looksLikeStatText(text) {
			continue
		}
		return text, true
	}
	return "", false
}

// looksLikeStatText filters out numeric stat readouts like "5/5" or "3".
func looksLikeStatText(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' || r == '/' || r == '+' {
			digits++
		}
	}
	return digits*2 >= len(s)
}
