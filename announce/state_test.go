package announce

import (
	"strings"
	"testing"

	"github.com/railspeak/railspeak/host/fake"
)

func TestFocusChanged(t *testing.T) {
	s := NewState()
	a := fake.NewNode("A")
	b := fake.NewNode("B")

	if !s.FocusChanged(a) {
		t.Fatalf("expected first focus to count as a change")
	}
	if s.FocusChanged(a) {
		t.Fatalf("expected repeat focus to be suppressed")
	}
	if !s.FocusChanged(b) {
		t.Fatalf("expected new node to count as a change")
	}
	if s.LastFocused() != b {
		t.Fatalf("expected last focused to be b")
	}
}

func TestDialogDedup(t *testing.T) {
	s := NewState()
	if s.SameDialog("Abandon this run?") {
		t.Fatalf("expected fresh dialog to be unseen")
	}
	s.RememberDialog("Abandon this run?")
	if !s.SameDialog("Abandon this run?") {
		t.Fatalf("expected remembered dialog to match")
	}
	if s.SameDialog("Delete this save?") {
		t.Fatalf("expected different dialog to be unseen")
	}
	s.ClearDialog()
	if s.SameDialog("Abandon this run?") {
		t.Fatalf("expected cleared dialog to be unseen again")
	}
}

func TestScrollDiff_Extension(t *testing.T) {
	s := NewState()
	s.RememberScroll("ABC")

	delta, extended := s.ScrollDiff("ABCDEF")
	if !extended || delta != "DEF" {
		t.Fatalf("expected appended suffix DEF, got %q (extended=%v)", delta, extended)
	}

	delta, extended = s.ScrollDiff("ABCDEF")
	if extended || delta != "" {
		t.Fatalf("expected unchanged content to diff empty, got %q", delta)
	}

	delta, extended = s.ScrollDiff("XYZ")
	if extended || delta != "XYZ" {
		t.Fatalf("expected unrelated content returned whole, got %q (extended=%v)", delta, extended)
	}
}

func TestScrollDiff_ClearedOnFocusChange(t *testing.T) {
	s := NewState()
	s.RememberScroll("ABC")
	s.ClearScroll()
	delta, extended := s.ScrollDiff("ABCDEF")
	if extended {
		t.Fatalf("expected no extension after clear")
	}
	if delta != "ABCDEF" {
		t.Fatalf("expected whole content, got %q", delta)
	}
}

func TestPanelGrowth(t *testing.T) {
	s := NewState()
	base := strings.Repeat("x", 100)

	if tail, grown := s.PanelGrowth(base, 50); grown {
		t.Fatalf("expected first scan to only record, got %q", tail)
	}
	if _, grown := s.PanelGrowth(base+"tiny", 50); grown {
		t.Fatalf("expected growth below threshold to be suppressed")
	}

	s = NewState()
	s.PanelGrowth(base, 50)
	added := strings.Repeat("y", 60)
	tail, grown := s.PanelGrowth(base+added, 50)
	if !grown || tail != added {
		t.Fatalf("expected grown tail, got %q (grown=%v)", tail, grown)
	}
	if _, grown := s.PanelGrowth(base+added, 50); grown {
		t.Fatalf("expected identical text to be suppressed")
	}
}

func TestEnterSpecialScreen(t *testing.T) {
	s := NewState()
	if !s.EnterSpecialScreen("tutorial", "Welcome") {
		t.Fatalf("expected first entry to report new")
	}
	if s.EnterSpecialScreen("tutorial", "Welcome") {
		t.Fatalf("expected repeat entry to be suppressed")
	}
	s.EnterSpecialScreen("tutorial", "")
	if !s.EnterSpecialScreen("tutorial", "Welcome") {
		t.Fatalf("expected re-entry after clear to report new")
	}
}

func TestEnterSpecialScreen_SlotsAreIndependent(t *testing.T) {
	s := NewState()
	s.EnterSpecialScreen("tutorial", "Welcome")
	if !s.EnterSpecialScreen("screen", "settings") {
		t.Fatalf("expected a second slot to have its own memory")
	}
	if s.EnterSpecialScreen("tutorial", "Welcome") {
		t.Fatalf("expected the screen slot not to evict the tutorial key")
	}
	if s.EnterSpecialScreen("screen", "settings") {
		t.Fatalf("expected the tutorial slot not to evict the screen key")
	}
}

func TestLastAnnounced_SurvivesClear(t *testing.T) {
	s := NewState()
	s.EnterSpecialScreen("screen", "merchantscreen")
	s.EnterSpecialScreen("screen", "")
	if got := s.LastAnnounced("screen"); got != "merchantscreen" {
		t.Fatalf("expected recall after clear, got %q", got)
	}
	if !s.EnterSpecialScreen("screen", "merchantscreen") {
		t.Fatalf("expected cleared slot to re-announce")
	}
	s.Reset()
	if s.LastAnnounced("screen") != "" {
		t.Fatalf("expected reset to drop recall")
	}
}

func TestUpgradeHint(t *testing.T) {
	s := NewState()
	if !s.UpgradeHintPending() {
		t.Fatalf("expected hint pending on first check")
	}
	if s.UpgradeHintPending() {
		t.Fatalf("expected hint shown only once")
	}
	s.ResetUpgradeHint()
	if !s.UpgradeHintPending() {
		t.Fatalf("expected hint re-armed after reset")
	}
}

func TestReset(t *testing.T) {
	s := NewState()
	n := fake.NewNode("A")
	s.FocusChanged(n)
	s.RememberDialog("d")
	s.RememberScroll("sc")
	s.Reset()

	if s.LastFocused() != nil {
		t.Fatalf("expected focus memory cleared")
	}
	if s.SameDialog("d") {
		t.Fatalf("expected dialog memory cleared")
	}
	if !s.FocusChanged(n) {
		t.Fatalf("expected node to read as new after reset")
	}
}
