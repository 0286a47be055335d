package extract

import (
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// dialogButtonWords are the name fragments that mark a confirmation button.
var dialogButtonWords = []string{"yes", "no", "ok", "okay", "cancel", "confirm", "accept", "decline"}

// DialogButton announces confirmation dialogs. The first button focused
// inside a new dialog speaks the dialog text plus the button label; moving
// between buttons of the same dialog speaks only the label.
type DialogButton struct{}

// Name implements Extractor.
func (DialogButton) Name() string { return "dialog-button" }

// TryExtract implements Extractor.
func (DialogButton) TryExtract(n host.Node, ctx *Context) (string, bool) {
	if !isDialogButton(n) {
		return "", false
	}
	dialog, c, ok := locate.FindAncestorCapability(n, "dialog", locate.MaxDialogAncestorDepth)
	if !ok {
		return "", false
	}
	label := ctx.Speakable(labelOf(n))
	if label == "" {
		label = markup.CleanName(n.Name())
	}

	content := dialogContent(dialog, c.Handle(), ctx)
	if content == "" {
		return label, true
	}
	if s := ctx.state(); s != nil {
		if s.SameDialog(content) {
			return label, true
		}
		s.RememberDialog(content)
	}
	return "Dialog: " + content + ". " + label, true
}

// InDialogContext reports whether the node sits inside a dialog; the engine
// uses this to decide when leaving dialog context should clear the
// remembered dialog text.
func InDialogContext(n host.Node) bool {
	_, _, ok := locate.FindAncestorCapability(n, "dialog", locate.MaxDialogAncestorDepth)
	return ok
}

func isDialogButton(n host.Node) bool {
	name := strings.ToLower(n.Name())
	if !strings.Contains(name, "button") {
		return false
	}
	for _, w := range dialogButtonWords {
		if strings.Contains(name, w) {
			return true
		}
	}
	return false
}

// dialogContent reads the dialog's message: the content field on the dialog
// capability is preferred, falling back to scoring visible text under the
// dialog root that is not itself inside a button.
func dialogContent(dialog host.Node, handle any, ctx *Context) string {
	if text, ok := readText(handle, "content", "contentLabel", "bodyText", "message"); ok {
		return ctx.Speakable(text)
	}
	best := ""
	bestScore := 0
	scoreDialogText(dialog, dialog, 0, ctx, &best, &bestScore)
	return ctx.Speakable(best)
}

func scoreDialogText(root, n host.Node, depth int, ctx *Context, best *string, bestScore *int) {
	if n == nil || depth > locate.MaxDescendantDepth || !n.ActiveSelf() {
		return
	}
	if strings.Contains(strings.ToLower(n.Name()), "button") {
		return
	}
	if text, ok := locate.Text(n); ok {
		score := len(text)
		if strings.Contains(text, "?") {
			score += 40
		}
		if score > *bestScore {
			*best, *bestScore = text, score
		}
	}
	for _, child := range n.Children() {
		scoreDialogText(root, child, depth+1, ctx, best, bestScore)
	}
}
