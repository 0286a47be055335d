package extract

import (
	"testing"

	"github.com/railspeak/railspeak/host/fake"
)

func TestNameFallback_PlainText(t *testing.T) {
	n := fake.NewNode("DescriptionLabel",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "Collect three relics to win."}))

	got, ok := NameFallback{}.TryExtract(n, newTestContext())
	if !ok || got != "Collect three relics to win." {
		t.Fatalf("expected direct text, got %q (ok=%v)", got, ok)
	}
}

func TestNameFallback_IconGlyphUsesName(t *testing.T) {
	n := fake.NewNode("EmberIcon3",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "5"}))

	got, ok := NameFallback{}.TryExtract(n, newTestContext())
	if !ok || got != "Ember Icon" {
		t.Fatalf("expected cleaned name over glyph text, got %q (ok=%v)", got, ok)
	}
}

func TestNameFallback_ShortTextPairedWithNearbyLabel(t *testing.T) {
	value := fake.NewNode("Value",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "250"}))
	caption := fake.NewNode("Caption",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "Gold balance"}))
	fake.NewNode("GoldCounter", fake.WithChildren(value, caption))

	got, ok := NameFallback{}.TryExtract(value, newTestContext())
	if !ok || got != "250, Gold balance" {
		t.Fatalf("expected paired context, got %q (ok=%v)", got, ok)
	}
}

func TestNameFallback_SubtreeTextWhenNoDirectText(t *testing.T) {
	inner := fake.NewNode("Inner",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "Continue"}))
	n := fake.NewNode("Wrapper", fake.WithChildren(inner))

	got, ok := NameFallback{}.TryExtract(n, newTestContext())
	if !ok || got != "Continue" {
		t.Fatalf("expected subtree text, got %q (ok=%v)", got, ok)
	}
}

func TestNameFallback_NameOnly(t *testing.T) {
	got, ok := NameFallback{}.TryExtract(fake.NewNode("BackButton"), newTestContext())
	if !ok || got != "Back Button" {
		t.Fatalf("expected cleaned name, got %q (ok=%v)", got, ok)
	}
}
