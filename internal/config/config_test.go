package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", "")
	t.Setenv("TODOADMIN_PAGE_SIZE", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Fatalf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Fatalf("expected default page size, got %d", cfg.PageSize)
	}
}

func TestLoadFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOADMIN_CONFIG_DIR", dir)
	t.Setenv("TODOADMIN_BASE_URL", "")
	t.Setenv("TODOADMIN_PAGE_SIZE", "")

	if err := Save(Config{BaseURL: "https://file.example.com/", PageSize: 20}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://file.example.com" {
		t.Fatalf("expected file base URL without trailing slash, got %q", cfg.BaseURL)
	}
	if cfg.PageSize != 20 {
		t.Fatalf("expected file page size, got %d", cfg.PageSize)
	}

	// Environment beats the file.
	t.Setenv("TODOADMIN_BASE_URL", "https://env.example.com")
	t.Setenv("TODOADMIN_PAGE_SIZE", "5")
	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://env.example.com" || cfg.PageSize != 5 {
		t.Fatalf("expected env overrides, got %+v", cfg)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TODOADMIN_CONFIG_DIR", dir)

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed config file")
	}
}

func TestLoadIgnoresBadPageSizeEnv(t *testing.T) {
	t.Setenv("TODOADMIN_CONFIG_DIR", t.TempDir())
	t.Setenv("TODOADMIN_BASE_URL", "")
	t.Setenv("TODOADMIN_PAGE_SIZE", "zero")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.PageSize != DefaultPageSize {
		t.Fatalf("bad page size env should fall back to default, got %d", cfg.PageSize)
	}
}
