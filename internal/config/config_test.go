package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Threshold <= 0 {
		t.Error("threshold should be positive")
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if err := cfg.Params().Validate(); err != nil {
		t.Errorf("default config should produce valid params: %v", err)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("impulsive")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Threshold != 0.8 {
		t.Errorf("expected threshold 0.8, got %f", cfg.Threshold)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestPresetsValidate(t *testing.T) {
	for name, cfg := range Presets {
		if err := cfg.Params().Validate(); err != nil {
			t.Errorf("preset %s should produce valid params: %v", name, err)
		}
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ddm.yaml")

	cfg := DefaultConfig()
	cfg.DriftRate = -0.7
	cfg.Seed = 42

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.DriftRate != -0.7 {
		t.Errorf("expected drift -0.7, got %f", loaded.DriftRate)
	}
	if loaded.Seed != 42 {
		t.Errorf("expected seed 42, got %d", loaded.Seed)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
