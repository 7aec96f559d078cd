package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}

	if cfg.GetOutputDir() != DefaultOutputDir {
		t.Errorf("GetOutputDir() = %q, want %q", cfg.GetOutputDir(), DefaultOutputDir)
	}
	if cfg.GetVariant() != "subdir" {
		t.Errorf("GetVariant() = %q, want subdir", cfg.GetVariant())
	}
	if cfg.GetAspect() != 1 {
		t.Errorf("GetAspect() = %f, want 1", cfg.GetAspect())
	}
	if cfg.GetDrawColorbar() {
		t.Error("GetDrawColorbar() = true, want false")
	}
	if cfg.GetColorbarOrientation() != "horizontal" {
		t.Errorf("GetColorbarOrientation() = %q, want horizontal", cfg.GetColorbarOrientation())
	}
	if cfg.GetDataMin() != nil || cfg.GetDataMax() != nil {
		t.Error("expected nil amplitude stretch limits by default")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insarlook.json")
	content := `{"output_dir": "/data/out", "datamax": 10000, "draw_colorbar": true}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.GetOutputDir() != "/data/out" {
		t.Errorf("GetOutputDir() = %q, want /data/out", cfg.GetOutputDir())
	}
	if cfg.GetDataMax() == nil || *cfg.GetDataMax() != 10000 {
		t.Errorf("GetDataMax() = %v, want 10000", cfg.GetDataMax())
	}
	if !cfg.GetDrawColorbar() {
		t.Error("GetDrawColorbar() = false, want true")
	}

	// Omitted fields keep defaults.
	if cfg.GetVariant() != "subdir" {
		t.Errorf("GetVariant() = %q, want subdir", cfg.GetVariant())
	}
	if cfg.GetDataMin() != nil {
		t.Errorf("GetDataMin() = %v, want nil", cfg.GetDataMin())
	}
}

func TestLoadRejectsNonJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "insarlook.yaml")
	if err := os.WriteFile(path, []byte("output_dir: /x"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for non-.json config file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
