package extract

import (
	"fmt"
	"math"
	"strings"

	"github.com/railspeak/railspeak/host"
	"github.com/railspeak/railspeak/introspect"
	"github.com/railspeak/railspeak/locate"
	"github.com/railspeak/railspeak/markup"
)

// SettingsControl announces settings rows as "Label: current value". The
// label comes from the settings-entry ancestor's cleaned name; the value is
// read by control kind.
type SettingsControl struct{}

// Name implements Extractor.
func (SettingsControl) Name() string { return "settings-control" }

// TryExtract implements Extractor.
func (SettingsControl) TryExtract(n host.Node, ctx *Context) (string, bool) {
	entry, _, ok := locate.FindAncestorCapability(n, "settingsentry", 6)
	if !ok {
		return "", false
	}
	label := settingsLabel(entry, ctx)
	value := controlValue(n, entry, ctx)
	if value == "" {
		return label, true
	}
	return label + ": " + value, true
}

// settingsLabel derives a spoken label from the entry node's name, dropping
// control-kind suffixes like Dropdown or Slider.
func settingsLabel(entry host.Node, ctx *Context) string {
	words := strings.Fields(markup.CleanName(entry.Name()))
	var kept []string
	for _, w := range words {
		switch strings.ToLower(w) {
		case "dropdown", "slider", "toggle", "setting", "entry", "option", "row":
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		kept = words
	}
	return ctx.Speakable(strings.Join(kept, " "))
}

func controlValue(n, entry host.Node, ctx *Context) string {
	if _, c, ok := locate.FindCapabilityAround(n, "dropdown", 3); ok {
		if caption, found := dropdownCaption(c.Handle()); found {
			return ctx.Speakable(caption)
		}
	}
	if _, c, ok := locate.FindCapabilityAround(n, "slider", 3); ok {
		if value, found := sliderPercent(c.Handle()); found {
			return value
		}
	}
	if _, c, ok := locate.FindCapabilityAround(n, "toggle", 3); ok {
		if on, found := introspect.ReadBool(c.Handle(), "isOn", "checked", "value"); found {
			if on {
				return "On"
			}
			return "Off"
		}
	}
	// Last resort: the first visible text label under the entry that isn't
	// the entry's own caption.
	for _, child := range entry.Children() {
		if !child.ActiveSelf() {
			continue
		}
		if text, ok := locate.Text(child); ok {
			return ctx.Speakable(text)
		}
	}
	return ""
}

// dropdownCaption reads the currently selected option's caption, trying the
// well-known accessors before probing for a nested caption label object.
func dropdownCaption(handle any) (string, bool) {
	if caption, ok := readText(handle, "currentText", "captionText", "GetCurrentLabel", "caption"); ok {
		return caption, true
	}
	if idx, ok := introspect.ReadInt(handle, "value", "selectedIndex"); ok {
		if options, found := introspect.ReadSlice(handle, "options", "choices"); found && idx >= 0 && idx < len(options) {
			return stringish(options[idx])
		}
	}
	return "", false
}

// sliderPercent renders a slider's normalized value as a rounded
// percentage.
func sliderPercent(handle any) (string, bool) {
	value, ok := introspect.ReadFloat(handle, "normalizedValue", "value")
	if !ok {
		return "", false
	}
	if value < 0 {
		value = 0
	}
	if value > 1 {
		// Some sliders report raw ranges; normalize against max when
		// available, otherwise assume the value is already a percent.
		if max, found := introspect.ReadFloat(handle, "maxValue", "max"); found && max > 0 {
			value /= max
		} else {
			value /= 100
		}
	}
	return fmt.Sprintf("%d percent", int(math.Round(value*100))), true
}
