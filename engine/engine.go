// Package engine drives the accessible text resolution loop: a fast focus
// poll and a slower passive content scan over the host's view-tree. All
// work is synchronous and single-threaded; nothing here blocks, and no
// failure may escape into the host process.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/railspeak/railspeak/announce"
	"github.com/railspeak/railspeak/extract"
	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/keywords"
	"github.com/railspeak/railspeak/locale"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
	"github.com/railspeak/railspeak/speech"
)

// Default poll intervals.
const (
	DefaultFocusInterval = 120 * time.Millisecond
	DefaultScanInterval  = 600 * time.Millisecond
)

// upgradeHint is spoken once when a card upgrade selection screen appears.
const upgradeHint = "Card upgrade selection. Focus a card to hear its upgrade paths."

// Announcement memory slots for the passive scans. Each scan owns its slot
// so the dedup keys never evict one another.
const (
	slotTutorial = "tutorial"
	slotScreen   = "screen"
)

// TargetingHandler activates an external targeting collaborator when focus
// lands on a targeting control; the engine produces no text for those.
type TargetingHandler func(n host.Node)

// Config configures an Engine. Tree is required; everything else defaults.
type Config struct {
	Tree       host.Tree
	Speaker    speech.Speaker
	Resolver   locale.Resolver
	Annotator  *keywords.Annotator
	Chain      *extract.Chain
	Visibility *locate.Visibility
	Logger     *slog.Logger

	FocusInterval time.Duration
	ScanInterval  time.Duration

	// AnnounceCap limits first announcements of long content; zero means
	// the markup default.
	AnnounceCap int

	// PanelGrowthMin is the minimum growth of concatenated panel text
	// before a passive re-announcement; zero means the announce default.
	PanelGrowthMin int

	// OnFloorTargeting and OnUnitTargeting divert focus events on
	// targeting controls to external collaborators.
	OnFloorTargeting TargetingHandler
	OnUnitTargeting  TargetingHandler

	// InBattle reports whether a battle is in progress.
	InBattle func() bool
}

// Engine polls the host tree and forwards resolved descriptions to the
// speech collaborator.
type Engine struct {
	tree          host.Tree
	speaker       speech.Speaker
	chain         *extract.Chain
	visibility    *locate.Visibility
	log           *slog.Logger
	focusInterval time.Duration
	scanInterval  time.Duration
	growthMin     int
	onFloor       TargetingHandler
	onUnit        TargetingHandler

	state *announce.State
	ectx  *extract.Context
}

// New creates an Engine from config.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	speaker := cfg.Speaker
	if speaker == nil {
		speaker = speech.Null{}
	}
	chain := cfg.Chain
	if chain == nil {
		chain = extract.Default()
	}
	visibility := cfg.Visibility
	if visibility == nil {
		visibility = locate.NewVisibility()
	}
	focusInterval := cfg.FocusInterval
	if focusInterval <= 0 {
		focusInterval = DefaultFocusInterval
	}
	scanInterval := cfg.ScanInterval
	if scanInterval <= 0 {
		scanInterval = DefaultScanInterval
	}
	state := announce.NewState()
	e := &Engine{
		tree:          cfg.Tree,
		speaker:       speaker,
		chain:         chain,
		visibility:    visibility,
		log:           logger,
		focusInterval: focusInterval,
		scanInterval:  scanInterval,
		growthMin:     cfg.PanelGrowthMin,
		onFloor:       cfg.OnFloorTargeting,
		onUnit:        cfg.OnUnitTargeting,
		state:         state,
		ectx: &extract.Context{
			Resolver:    cfg.Resolver,
			Annotator:   cfg.Annotator,
			State:       state,
			Visibility:  visibility,
			Log:         logger,
			InBattle:    cfg.InBattle,
			AnnounceCap: cfg.AnnounceCap,
		},
	}
	return e
}

// Context exposes the extraction context for composition (annotator,
// resolver swaps) before the loop starts.
func (e *Engine) Context() *extract.Context {
	if e == nil {
		return nil
	}
	return e.ectx
}

// State returns the engine's announcement state.
func (e *Engine) State() *announce.State {
	if e == nil {
		return nil
	}
	return e.state
}

// Resume clears all announcement memory. Call on unpause or context
// re-entry so suppressed content is announced fresh.
func (e *Engine) Resume() {
	if e == nil {
		return
	}
	e.state.Reset()
}

// Run polls until the context is cancelled. The loop is a single goroutine;
// focus checks and content scans never overlap.
func (e *Engine) Run(ctx context.Context) error {
	if e == nil || e.tree == nil {
		return fmt.Errorf("engine requires a host tree")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	focusTicker := time.NewTicker(e.focusInterval)
	defer focusTicker.Stop()
	scanTicker := time.NewTicker(e.scanInterval)
	defer scanTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-focusTicker.C:
			e.TickFocus()
		case <-scanTicker.C:
			e.TickScan()
		}
	}
}

// TickFocus performs one focus-change check. Safe to call from a host
// update tick; never panics.
func (e *Engine) TickFocus() {
	defer e.recoverTick("focus")
	if e == nil || e.tree == nil {
		return
	}
	n := e.tree.FocusedNode()
	if n == nil || !e.state.FocusChanged(n) {
		return
	}
	e.state.ClearScroll()

	if e.divertTargeting(n) {
		return
	}
	if !extract.InDialogContext(n) {
		e.state.ClearDialog()
	}
	if !e.visibility.IsActuallyVisible(n) {
		return
	}
	text := e.chain.Describe(n, e.ectx)
	if text == "" {
		return
	}
	e.speaker.Speak(text, true)
}

// divertTargeting routes floor- and unit-targeting focus to the external
// targeting collaborators, producing no text.
func (e *Engine) divertTargeting(n host.Node) bool {
	switch {
	case locate.NameContains(n, "floortarget"), locate.NameContains(n, "targetfloor"):
		if e.onFloor != nil {
			e.onFloor(n)
		}
		return true
	case locate.NameContains(n, "unittarget"), locate.NameContains(n, "targetunit"):
		if e.onUnit != nil {
			e.onUnit(n)
		}
		return true
	}
	return false
}

// TickScan performs one passive content scan: scroll growth, tutorial
// panels, upgrade-screen hints, screen transitions, and panel text growth.
func (e *Engine) TickScan() {
	defer e.recoverTick("scan")
	if e == nil || e.tree == nil {
		return
	}
	e.scanScrollGrowth()
	roots := e.tree.SceneRoots()
	e.scanTutorial(roots)
	e.scanUpgradeScreen(roots)
	e.scanSpecialScreens(roots)
	e.scanPanelGrowth(roots)
}

func (e *Engine) scanScrollGrowth() {
	focused := e.tree.FocusedNode()
	content, ok := extract.ScrollContentFor(focused)
	if !ok {
		return
	}
	delta, extended := e.state.ScrollDiff(content)
	if delta == "" {
		return
	}
	if extended {
		e.speaker.Queue(markup.Clean(delta))
		return
	}
	// Unrelated new content: only substantial text is worth speaking.
	if len(delta) > e.growthThreshold() {
		e.speaker.Queue(markup.Truncate(markup.Clean(delta), e.ectx.AnnounceCap))
	}
}

func (e *Engine) scanTutorial(roots []host.Node) {
	for _, root := range roots {
		node, found := findNamed(root, "tutorial", 0)
		if !found || !e.visibility.IsActuallyVisible(node) {
			continue
		}
		text := locate.JoinedText(node)
		if text == "" {
			continue
		}
		if e.state.EnterSpecialScreen(slotTutorial, text) {
			e.speaker.Speak("Tutorial: "+markup.Clean(text), true)
		}
		return
	}
	e.state.EnterSpecialScreen(slotTutorial, "")
}

// scanUpgradeScreen announces a one-time helper hint when a card upgrade
// selection screen appears, re-arming once it is gone.
func (e *Engine) scanUpgradeScreen(roots []host.Node) {
	if e.ectx.InBattle != nil && e.ectx.InBattle() {
		return
	}
	if !e.detectUpgradeScreen(roots) {
		e.state.ResetUpgradeHint()
		return
	}
	if e.state.UpgradeHintPending() {
		e.speaker.Queue(upgradeHint)
	}
}

func (e *Engine) scanSpecialScreens(roots []host.Node) {
	for _, root := range roots {
		node, found := findScreenNode(root, 0)
		if !found {
			continue
		}
		if e.state.EnterSpecialScreen(slotScreen, locate.NormalizeName(node.Name())) {
			e.speaker.AnnounceScreen(markup.CleanName(node.Name()))
		}
		return
	}
	e.state.EnterSpecialScreen(slotScreen, "")
}

func (e *Engine) scanPanelGrowth(roots []host.Node) {
	var collected []string
	for _, root := range roots {
		collectPanelText(root, 0, &collected)
	}
	if len(collected) == 0 {
		return
	}
	joined := ""
	for i, s := range collected {
		if i > 0 {
			joined += ". "
		}
		joined += s
	}
	grown, ok := e.state.PanelGrowth(joined, e.growthMin)
	if !ok || grown == "" {
		return
	}
	e.speaker.Queue(markup.Truncate(markup.Clean(grown), e.ectx.AnnounceCap))
}

func (e *Engine) growthThreshold() int {
	if e.growthMin > 0 {
		return e.growthMin
	}
	return announce.DefaultPanelGrowthMin
}

func (e *Engine) recoverTick(kind string) {
	if r := recover(); r != nil {
		e.log.Error("poll tick failed",
			slog.String("tick", kind),
			slog.String("error", fmt.Sprint(r)))
	}
}

// findNamed locates the first active node whose name contains sub.
func findNamed(n host.Node, sub string, depth int) (host.Node, bool) {
	if n == nil || depth > locate.MaxDescendantDepth || !n.ActiveSelf() {
		return nil, false
	}
	if locate.NameContains(n, sub) {
		return n, true
	}
	for _, child := range n.Children() {
		if found, ok := findNamed(child, sub, depth+1); ok {
			return found, ok
		}
	}
	return nil, false
}

// findScreenNode locates an active node carrying a screen capability near
// the root: screens are shallow by construction.
func findScreenNode(n host.Node, depth int) (host.Node, bool) {
	if n == nil || depth > 3 || !n.ActiveSelf() {
		return nil, false
	}
	if host.HasCapability(n, "screen") {
		return n, true
	}
	for _, child := range n.Children() {
		if found, ok := findScreenNode(child, depth+1); ok {
			return found, ok
		}
	}
	return nil, false
}

// upgradeWords are the visible-text fragments that mark an upgrade screen.
var upgradeWords = []string{"upgrade", "enhance"}

// detectUpgradeScreen recognizes the card upgrade selection layout by three
// signals: three or more active card elements, or at least one card together
// with upgrade wording in the visible text, or at least one card right after
// a shop or map screen. The single-card signals require a card so that a
// merchant's "Upgrade a card" service button alone never trips the hint.
func (e *Engine) detectUpgradeScreen(roots []host.Node) bool {
	cards := 0
	for _, root := range roots {
		countCards(root, 0, &cards)
	}
	if cards >= 3 {
		return true
	}
	if cards == 0 {
		return false
	}
	for _, root := range roots {
		for _, text := range locate.CollectText(root) {
			lower := strings.ToLower(text)
			for _, w := range upgradeWords {
				if strings.Contains(lower, w) {
					return true
				}
			}
		}
	}
	return e.recentShopOrMapContext()
}

// recentShopOrMapContext reports whether the last announced screen was a
// shop or a map, where upgrade selections are entered from.
func (e *Engine) recentShopOrMapContext() bool {
	key := e.state.LastAnnounced(slotScreen)
	for _, frag := range []string{"shop", "merchant", "map"} {
		if strings.Contains(key, frag) {
			return true
		}
	}
	return false
}

func countCards(n host.Node, depth int, cards *int) {
	if n == nil || depth > locate.MaxDescendantDepth || !n.ActiveSelf() {
		return
	}
	if host.HasCapability(n, "card") {
		*cards++
	}
	for _, child := range n.Children() {
		countCards(child, depth+1, cards)
	}
}

// collectPanelText gathers text under recognized panel-like nodes.
func collectPanelText(n host.Node, depth int, out *[]string) {
	if n == nil || depth > locate.MaxDescendantDepth || !n.ActiveSelf() {
		return
	}
	if isPanelNamed(n) {
		if text := locate.JoinedText(n); text != "" {
			*out = append(*out, text)
		}
		return
	}
	for _, child := range n.Children() {
		collectPanelText(child, depth+1, out)
	}
}

func isPanelNamed(n host.Node) bool {
	for _, sub := range []string{"panel", "dialog", "popup", "tooltip"} {
		if locate.NameContains(n, sub) {
			return true
		}
	}
	return false
}
