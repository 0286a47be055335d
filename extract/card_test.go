package extract

import (
	"strings"
	"testing"

	"github.com/railspeak/railspeak/host/fake"
)

func firestormState() map[string]any {
	return map[string]any{
		"title":       "Firestorm",
		"cardType":    "Spell",
		"clan":        "Umbra",
		"cost":        3,
		"description": "Deal <damage>5</damage> to all enemies. Apply Frozen.",
	}
}

func TestCard_Firestorm(t *testing.T) {
	node := fake.NewNode("FirestormCard",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: firestormState()}))

	got, ok := Card{}.TryExtract(node, newTestContext())
	if !ok {
		t.Fatalf("expected card to match")
	}
	for _, want := range []string{"Firestorm (Spell)", "Umbra", "3 ember", "Deal 5 damage to all enemies", "Frozen:"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
}

func TestCard_CapabilityOnAncestor(t *testing.T) {
	frame := fake.NewNode("CardFrame")
	fake.NewNode("CardRoot",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: firestormState()}),
		fake.WithChildren(frame))

	got, ok := Card{}.TryExtract(frame, newTestContext())
	if !ok || !strings.Contains(got, "Firestorm") {
		t.Fatalf("expected card found through ancestor, got %q (ok=%v)", got, ok)
	}
}

func TestCard_UnitStats(t *testing.T) {
	state := map[string]any{
		"title":    "Steelworker",
		"cardType": "Unit",
		"cost":     2,
		"attack":   2,
		"health":   5,
	}
	node := fake.NewNode("SteelworkerCard",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: state}))

	got, _ := Card{}.TryExtract(node, newTestContext())
	if !strings.Contains(got, "Attack 2, Health 5") {
		t.Fatalf("expected unit stats, got %q", got)
	}
}

func TestCard_SpellOmitsStats(t *testing.T) {
	node := fake.NewNode("FirestormCard",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: firestormState()}))

	got, _ := Card{}.TryExtract(node, newTestContext())
	if strings.Contains(got, "Attack") {
		t.Fatalf("expected no stats for a spell, got %q", got)
	}
}

func TestCard_EnumCardType(t *testing.T) {
	state := map[string]any{"title": "Rust", "cardType": 2}
	node := fake.NewNode("RustCard",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: state}))

	got, _ := Card{}.TryExtract(node, newTestContext())
	if !strings.Contains(got, "Rust (Blight)") {
		t.Fatalf("expected enum type mapped, got %q", got)
	}
}

func TestCard_EffectPlaceholders(t *testing.T) {
	state := map[string]any{
		"title":       "Lightning",
		"description": "Deal {[effect0.power]} damage.",
		"effects":     []any{map[string]any{"paramInt": 7}},
	}
	node := fake.NewNode("LightningCard",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: state}))

	got, _ := Card{}.TryExtract(node, newTestContext())
	if !strings.Contains(got, "Deal 7 damage") {
		t.Fatalf("expected substituted effect value, got %q", got)
	}
}

func TestCard_KeywordDedupAcrossSources(t *testing.T) {
	ctx := newTestContext()
	frozenDef, ok := ctx.Annotator.Definition("Frozen")
	if !ok {
		t.Fatalf("expected Frozen in the glossary")
	}
	state := map[string]any{
		"title":       "Glacier",
		"description": "Apply Frozen to a unit.",
		"tooltips": []any{
			map[string]any{"title": "Frozen", "body": frozenDef},
		},
		"statusEffects": []any{"frozen"},
	}
	node := fake.NewNode("GlacierCard",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: state}))

	got, _ := Card{}.TryExtract(node, ctx)
	if n := strings.Count(got, "Frozen:"); n != 1 {
		t.Fatalf("expected one Frozen definition across sources, got %d in %q", n, got)
	}
}

func TestCard_UpgradePathLabel(t *testing.T) {
	card := fake.NewNode("UpgradeCard",
		fake.WithNamedCapability("CardUI", &cardUI{CardState: firestormState()}),
		fake.WithPosition(100, 200))
	label := fake.NewNode("PathTitle",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "Path of Cinders"}),
		fake.WithPosition(100, 260))
	stat := fake.NewNode("StatReadout",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "5/5"}),
		fake.WithPosition(100, 280))
	fake.NewNode("UpgradeSlot", fake.WithChildren(card, label, stat))

	got, _ := Card{}.TryExtract(card, newTestContext())
	if !strings.HasPrefix(got, "Path of Cinders, upgrade path. ") {
		t.Fatalf("expected upgrade path prefix, got %q", got)
	}

	battle := newTestContext()
	battle.InBattle = func() bool { return true }
	got, _ = Card{}.TryExtract(card, battle)
	if strings.Contains(got, "upgrade path") {
		t.Fatalf("expected no upgrade label during battle, got %q", got)
	}
}

func TestCard_NoMatchWithoutCapability(t *testing.T) {
	if _, ok := (Card{}).TryExtract(fake.NewNode("PlainLabel"), newTestContext()); ok {
		t.Fatalf("expected non-card node to decline")
	}
}
