package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "railspeak.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("expected no error for a missing file, got %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_OverridesAndDefaults(t *testing.T) {
	path := writeConfig(t, "focus_interval_ms: 200\ndialog_denylist: [customblocker]\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.FocusIntervalMS != 200 {
		t.Fatalf("expected override, got %d", cfg.FocusIntervalMS)
	}
	if cfg.ScanIntervalMS != 600 {
		t.Fatalf("expected default for absent field, got %d", cfg.ScanIntervalMS)
	}
	if len(cfg.DialogDenylist) != 1 || cfg.DialogDenylist[0] != "customblocker" {
		t.Fatalf("unexpected denylist %v", cfg.DialogDenylist)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "focus_interval_ms: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	path := writeConfig(t, "focus_interval_ms: 500\nscan_interval_ms: 100\n")
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Fatalf("expected defaults on validation failure, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults must validate, got %v", err)
	}
	cfg.FocusIntervalMS = 0
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for zero focus interval")
	}
	cfg = Default()
	cfg.ScrollAnnounceCap = -1
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected error for negative announce cap")
	}
}

func TestIntervals(t *testing.T) {
	cfg := Default()
	if cfg.FocusInterval() != 120*time.Millisecond {
		t.Fatalf("unexpected focus interval %v", cfg.FocusInterval())
	}
	if cfg.ScanInterval() != 600*time.Millisecond {
		t.Fatalf("unexpected scan interval %v", cfg.ScanInterval())
	}
}
