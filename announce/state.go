// Package announce tracks what has already been spoken so the engine can
// suppress repeats while still catching genuinely new content. State is a
// single explicit value object owned by the poll loop, never ambient.
package announce

import (
	"hash/fnv"
	"strings"

	"github.com/railspeak/railspeak/host"
)

// DefaultPanelGrowthMin is the minimum growth, in characters, of the
// concatenated panel text before a passive re-announcement is queued. The
// threshold is a tuning default, not proven-correct behavior.
const DefaultPanelGrowthMin = 50

// State is the engine's per-session announcement memory.
type State struct {
	lastFocused      host.Node
	lastDialogText   string
	lastScrollText   string
	lastPanelText    string
	lastPanelHash    uint64
	specialKeys      map[string]string
	recentKeys       map[string]string
	upgradeHintShown bool
}

// NewState creates empty announcement state.
func NewState() *State {
	return &State{}
}

// Reset clears all memory. Called on resume and on context re-entry so that
// previously suppressed content is announced fresh.
func (s *State) Reset() {
	if s == nil {
		return
	}
	*s = State{}
}

// FocusChanged records the focused node and reports whether it differs from
// the previous tick. Node references are compared by identity only; the
// stored reference is never dereferenced after the tick that produced it.
func (s *State) FocusChanged(n host.Node) bool {
	if s == nil {
		return false
	}
	if n == s.lastFocused {
		return false
	}
	s.lastFocused = n
	return true
}

// LastFocused returns the node recorded by the previous focus tick.
func (s *State) LastFocused() host.Node {
	if s == nil {
		return nil
	}
	return s.lastFocused
}

// SameDialog reports whether text matches the last announced dialog text.
func (s *State) SameDialog(text string) bool {
	return s != nil && text != "" && s.lastDialogText == text
}

// RememberDialog records dialog text as announced.
func (s *State) RememberDialog(text string) {
	if s == nil {
		return
	}
	s.lastDialogText = text
}

// ClearDialog forgets the last dialog text. Called when focus leaves dialog
// context so a re-appearing identical dialog is spoken again.
func (s *State) ClearDialog() {
	if s == nil {
		return
	}
	s.lastDialogText = ""
}

// RememberScroll records the full content of the focused scroll view.
func (s *State) RememberScroll(text string) {
	if s == nil {
		return
	}
	s.lastScrollText = text
}

// ClearScroll forgets scroll content. Called on every focus change.
func (s *State) ClearScroll() {
	if s == nil {
		return
	}
	s.lastScrollText = ""
}

// ScrollDiff compares new scroll content against the remembered content.
// If the new content extends the old (longest-common-prefix check), only
// the appended suffix is returned with extended true. Unrelated content is
// returned whole with extended false; the caller decides whether its length
// warrants speaking. Unchanged content returns empty.
func (s *State) ScrollDiff(text string) (delta string, extended bool) {
	if s == nil {
		return "", false
	}
	prev := s.lastScrollText
	if text == prev {
		return "", false
	}
	s.lastScrollText = text
	if prev != "" && strings.HasPrefix(text, prev) {
		return text[len(prev):], true
	}
	return text, false
}

// PanelGrowth compares the concatenated panel text against the previous
// scan. When the text grew by at least minGrowth characters, the grown tail
// is returned. The first scan of a panel only records a baseline, since the
// focus announcement already covers fresh content. Prefix detection is
// best-effort: non-extending changes fall back to slicing at the old length.
func (s *State) PanelGrowth(text string, minGrowth int) (string, bool) {
	if s == nil {
		return "", false
	}
	if minGrowth <= 0 {
		minGrowth = DefaultPanelGrowthMin
	}
	h := hashText(text)
	prev, prevHash := s.lastPanelText, s.lastPanelHash
	s.lastPanelText, s.lastPanelHash = text, h
	if prevHash == 0 {
		return "", false
	}
	if h == prevHash || len(text) <= len(prev)+minGrowth {
		return "", false
	}
	if strings.HasPrefix(text, prev) {
		return strings.TrimSpace(text[len(prev):]), true
	}
	if len(prev) < len(text) {
		return strings.TrimSpace(text[len(prev):]), true
	}
	return "", false
}

// EnterSpecialScreen records a special-content key under its own slot and
// reports whether it was newly entered. Slots are independent: a tutorial
// scan and a screen scan never evict each other's memory. An empty key
// clears the slot, so content that disappears and re-appears is announced
// again.
func (s *State) EnterSpecialScreen(slot, key string) bool {
	if s == nil {
		return false
	}
	if key == "" {
		delete(s.specialKeys, slot)
		return false
	}
	if s.specialKeys[slot] == key {
		return false
	}
	if s.specialKeys == nil {
		s.specialKeys = make(map[string]string)
	}
	s.specialKeys[slot] = key
	if s.recentKeys == nil {
		s.recentKeys = make(map[string]string)
	}
	s.recentKeys[slot] = key
	return true
}

// LastAnnounced returns the most recent key announced for a slot. Unlike the
// dedup memory, it survives the clear that happens when the content
// disappears, so callers can reason about what was on screen just before.
func (s *State) LastAnnounced(slot string) string {
	if s == nil {
		return ""
	}
	return s.recentKeys[slot]
}

// UpgradeHintPending reports whether the one-time upgrade-screen hint has
// not yet been spoken, and marks it spoken.
func (s *State) UpgradeHintPending() bool {
	if s == nil || s.upgradeHintShown {
		return false
	}
	s.upgradeHintShown = true
	return true
}

// ResetUpgradeHint re-arms the upgrade-screen hint once the screen is gone.
func (s *State) ResetUpgradeHint() {
	if s == nil {
		return
	}
	s.upgradeHintShown = false
}

func hashText(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}
