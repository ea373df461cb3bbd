package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if cfg != want {
		t.Fatalf("got %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scte.yaml")
	body := "ProfilePath: custom.sccprofile\nDebug:\n  Enabled: true\n  Addr: \":9000\"\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ProfilePath != "custom.sccprofile" {
		t.Fatalf("got ProfilePath %q", cfg.ProfilePath)
	}
	if !cfg.Debug.Enabled || cfg.Debug.Addr != ":9000" {
		t.Fatalf("got Debug %+v", cfg.Debug)
	}
	if cfg.MenuPath != Default().MenuPath {
		t.Fatalf("expected unset MenuPath to keep its default, got %q", cfg.MenuPath)
	}
}
