package config

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override file configuration.
const (
	EnvDescriptor = "RSLENV_DESCRIPTOR"
	EnvNamespace  = "RSLENV_NAMESPACE"
	EnvVariable   = "RSLENV_VARIABLE"
	EnvPlatform   = "RSLENV_PLATFORM"
	EnvLogLevel   = "RSLENV_LOG_LEVEL"
)

var defaultEnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads .env and .env.local from dir when present, then every
// file in extra, which must exist. Existing process variables are never
// overridden. It returns the files that were loaded.
func LoadEnvFiles(dir string, extra ...string) ([]string, error) {
	var loaded []string

	for _, name := range defaultEnvFiles {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); stdErrors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("load %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}

	for _, p := range extra {
		if !filepath.IsAbs(p) {
			p = filepath.Join(dir, p)
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, fmt.Errorf("load %s: %w", p, err)
		}
		loaded = append(loaded, p)
	}

	return loaded, nil
}

// applyEnvOverrides copies RSLENV_* variables over file values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvDescriptor); v != "" {
		cfg.Descriptor = v
	}
	if v := os.Getenv(EnvNamespace); v != "" {
		cfg.Namespace = v
	}
	if v := os.Getenv(EnvVariable); v != "" {
		cfg.Variable = v
	}
	if v := os.Getenv(EnvPlatform); v != "" {
		cfg.Platform = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
}
