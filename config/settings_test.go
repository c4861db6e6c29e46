package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFallsBackToDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults when the file is missing, got %+v", cfg)
	}
}

func TestLoadOverlaysJSONOntoDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plate.json")
	if err := os.WriteFile(path, []byte(`{"growth":{"paddingQuantum":16}}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Growth.PaddingQuantum != 16 {
		t.Errorf("PaddingQuantum = %d, want 16", cfg.Growth.PaddingQuantum)
	}
	if cfg.Erosion.RiverCarveFactor != Default().Erosion.RiverCarveFactor {
		t.Errorf("expected unset fields to keep their defaults")
	}
}
