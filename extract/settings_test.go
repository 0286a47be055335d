package extract

import (
	"testing"

	"github.com/railspeak/railspeak/host/fake"
)

func TestSettingsControl_Dropdown(t *testing.T) {
	entry := fake.NewNode("ResolutionDropdown",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	control := entry.AddChild(fake.NewNode("Control",
		fake.WithNamedCapability("DropdownControl", &dropdownControl{CurrentText: "1920x1080"})))

	got, ok := SettingsControl{}.TryExtract(control, newTestContext())
	if !ok {
		t.Fatalf("expected settings entry to match")
	}
	if got != "Resolution: 1920x1080" {
		t.Fatalf("unexpected announcement %q", got)
	}
}

func TestSettingsControl_DropdownByIndex(t *testing.T) {
	entry := fake.NewNode("QualityDropdown",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	handle := map[string]any{
		"value":   1,
		"options": []any{"Low", "Medium", "High"},
	}
	control := entry.AddChild(fake.NewNode("Control",
		fake.WithNamedCapability("DropdownControl", handle)))

	got, _ := SettingsControl{}.TryExtract(control, newTestContext())
	if got != "Quality: Medium" {
		t.Fatalf("expected indexed option, got %q", got)
	}
}

func TestSettingsControl_SliderPercent(t *testing.T) {
	entry := fake.NewNode("MusicVolumeSlider",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	control := entry.AddChild(fake.NewNode("Control",
		fake.WithNamedCapability("SliderControl", &sliderControl{NormalizedValue: 0.7})))

	got, _ := SettingsControl{}.TryExtract(control, newTestContext())
	if got != "Music Volume: 70 percent" {
		t.Fatalf("unexpected announcement %q", got)
	}
}

func TestSettingsControl_SliderRawRange(t *testing.T) {
	entry := fake.NewNode("BrightnessSlider",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	handle := map[string]any{"value": 80.0, "maxValue": 100.0}
	control := entry.AddChild(fake.NewNode("Control",
		fake.WithNamedCapability("SliderControl", handle)))

	got, _ := SettingsControl{}.TryExtract(control, newTestContext())
	if got != "Brightness: 80 percent" {
		t.Fatalf("unexpected announcement %q", got)
	}
}

func TestSettingsControl_Toggle(t *testing.T) {
	entry := fake.NewNode("VsyncToggle",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	control := entry.AddChild(fake.NewNode("Control",
		fake.WithNamedCapability("ToggleControl", &toggleControl{IsOn: true})))

	got, _ := SettingsControl{}.TryExtract(control, newTestContext())
	if got != "Vsync: On" {
		t.Fatalf("unexpected announcement %q", got)
	}

	off := fake.NewNode("ShakeToggle",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	offControl := off.AddChild(fake.NewNode("Control",
		fake.WithNamedCapability("ToggleControl", &toggleControl{IsOn: false})))
	got, _ = SettingsControl{}.TryExtract(offControl, newTestContext())
	if got != "Shake: Off" {
		t.Fatalf("unexpected announcement %q", got)
	}
}

func TestSettingsControl_TextFallback(t *testing.T) {
	entry := fake.NewNode("LanguageSetting",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	control := entry.AddChild(fake.NewNode("ValueLabel",
		fake.WithNamedCapability("TextLabel", &textLabel{Text: "English"})))

	got, _ := SettingsControl{}.TryExtract(control, newTestContext())
	if got != "Language: English" {
		t.Fatalf("unexpected announcement %q", got)
	}
}

func TestSettingsControl_LabelOnlyWithoutValue(t *testing.T) {
	entry := fake.NewNode("AudioSetting",
		fake.WithNamedCapability("SettingsEntry", &settingsEntry{}))
	control := entry.AddChild(fake.NewNode("Control"))

	got, ok := SettingsControl{}.TryExtract(control, newTestContext())
	if !ok || got != "Audio" {
		t.Fatalf("expected bare label, got %q (ok=%v)", got, ok)
	}
}

func TestSettingsControl_NoMatchOutsideEntry(t *testing.T) {
	if _, ok := (SettingsControl{}).TryExtract(fake.NewNode("RandomNode"), newTestContext()); ok {
		t.Fatalf("expected non-settings node to decline")
	}
}
