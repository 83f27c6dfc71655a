package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Client configuration. Resolution order, highest first:
//
//  1. environment (TODOADMIN_BASE_URL, TODOADMIN_PAGE_SIZE),
//     with a project-local .env loaded first when present
//  2. ~/.todoadmin/config.json
//  3. built-in defaults
const (
	DefaultBaseURL  = "http://localhost:5000"
	DefaultPageSize = 10
)

type Config struct {
	// BaseURL is the backend API root, without a trailing slash.
	BaseURL string `json:"baseUrl,omitempty"`
	// PageSize is the default list page size (the UI offers 5/10/20).
	PageSize int `json:"pageSize,omitempty"`
}

func Dir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.todoadmin).
	if v := strings.TrimSpace(os.Getenv("TODOADMIN_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".todoadmin"), nil
}

func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load resolves the effective configuration. A missing config file is not an
// error; malformed JSON is (silently ignoring it would hide a real typo).
func Load() (Config, error) {
	// Best-effort .env for local development; absence is the normal case.
	_ = godotenv.Load()

	cfg := Config{BaseURL: DefaultBaseURL, PageSize: DefaultPageSize}

	path, err := Path()
	if err == nil {
		if b, rerr := os.ReadFile(path); rerr == nil {
			var fileCfg Config
			if jerr := json.Unmarshal(b, &fileCfg); jerr != nil {
				return Config{}, errors.New("parse " + path + ": " + jerr.Error())
			}
			if strings.TrimSpace(fileCfg.BaseURL) != "" {
				cfg.BaseURL = fileCfg.BaseURL
			}
			if fileCfg.PageSize > 0 {
				cfg.PageSize = fileCfg.PageSize
			}
		}
	}

	if v := strings.TrimSpace(os.Getenv("TODOADMIN_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("TODOADMIN_PAGE_SIZE")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}

	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return cfg, nil
}

// Save writes the config file, creating the config dir if needed.
func Save(cfg Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	path, err := Path()
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}
