package locate

import (
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
)

// defaultDenylist holds normalized names of known non-content dialogs that
// must never be announced even while technically active.
var defaultDenylist = []string{
	"screendimmer",
	"screenfader",
	"inputblocker",
	"tooltipblocker",
	"abandonrunconfirmation",
	"quitconfirmationdialog",
	"deletesaveconfirmation",
	"loadingscreen",
}

// Visibility decides whether a node is really visible to the player.
type Visibility struct {
	deny map[string]struct{}
}

// NewVisibility creates an evaluator with the built-in denylist plus any
// extra entries (matched against normalized names).
func NewVisibility(extraDeny ...string) *Visibility {
	v := &Visibility{deny: make(map[string]struct{}, len(defaultDenylist)+len(extraDeny))}
	for _, name := range defaultDenylist {
		v.deny[NormalizeName(name)] = struct{}{}
	}
	for _, name := range extraDeny {
		v.deny[NormalizeName(name)] = struct{}{}
	}
	return v
}

// Denied reports whether the node's normalized name is denylisted. Denial
// applies regardless of activation flags.
func (v *Visibility) Denied(n host.Node) bool {
	if v == nil || n == nil {
		return false
	}
	_, denied := v.deny[NormalizeName(n.Name())]
	return denied
}

// IsActuallyVisible walks from the node to the root checking activation,
// the denylist, zero-opacity groups, disabled canvases, and dialogs that
// report themselves as not currently showing.
func (v *Visibility) IsActuallyVisible(n host.Node) bool {
	if n == nil {
		return false
	}
	if v.Denied(n) {
		return false
	}
	if !n.ActiveInHierarchy() {
		return false
	}
	cur := n
	for depth := 0; cur != nil && depth <= MaxVisibilityDepth; depth++ {
		if v.Denied(cur) {
			return false
		}
		if c, ok := host.FindCapability(cur, "canvasgroup"); ok {
			if alpha, found := introspect.ReadFloat(c.Handle(), "alpha", "Alpha", "opacity"); found && alpha <= 0 {
				return false
			}
		}
		if c, ok := host.FindCapability(cur, "canvas"); ok && !host.MatchesType(c, "canvasgroup") {
			if enabled, found := introspect.ReadBool(c.Handle(), "enabled", "Enabled", "isActive"); found && !enabled {
				return false
			}
		}
		if c, ok := host.FindCapability(cur, "dialog"); ok {
			if showing, found := dialogShowing(c.Handle()); found && !showing {
				return false
			}
		}
		cur = cur.Parent()
	}
	return true
}

// dialogShowing probes a dialog capability for its visibility indicator,
// trying candidate spellings in order; the first readable one wins.
func dialogShowing(handle any) (bool, bool) {
	for _, name := range []string{"IsOpen", "IsShowing", "IsVisible", "shown", "active"} {
		if b, ok := introspect.ReadBool(handle, name); ok {
			return b, true
		}
	}
	return false, false
}

// NormalizeName lowercases a node name and strips spaces and underscores so
// denylist entries match regardless of the host's spelling.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	name = strings.ReplaceAll(name, "_", "")
	name = strings.TrimSuffix(name, "(clone)")
	return name
}
