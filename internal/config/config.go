// Package config loads rslenv settings from an optional YAML file, .env files
// and RSLENV_* environment variables. Every field has a default matching the
// RemoteSwingLibrary project layout, so running without a file is normal.
package config

import (
	"bytes"
	stdErrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/rslenv/internal/envpath"
	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
	"git.home.luguber.info/inful/rslenv/internal/layout"
	"git.home.luguber.info/inful/rslenv/internal/pom"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".rslenv.yaml"

// Config represents the rslenv configuration file.
type Config struct {
	Descriptor string        `yaml:"descriptor"`
	Namespace  string        `yaml:"namespace"`
	Variable   string        `yaml:"variable"`
	Platform   string        `yaml:"platform"`
	EnvFiles   []string      `yaml:"env_files,omitempty"`
	Layout     layout.Layout `yaml:"layout"`
	Logging    LoggingConfig `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Descriptor: pom.DefaultPath,
		Namespace:  pom.DefaultNamespace,
		Variable:   envpath.DefaultVariable,
		Platform:   string(envpath.PlatformAuto),
		Layout:     layout.Default(),
		Logging:    LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Load reads path over the defaults and applies environment overrides. A
// missing file is an error only when required is set.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // path comes from the --config flag.
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, derrors.ConfigInvalid(path, err)
		}
	case stdErrors.Is(err, fs.ErrNotExist):
		if required {
			return nil, derrors.ConfigNotFound(path)
		}
	default:
		return nil, derrors.ConfigInvalid(path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	expanded := os.ExpandEnv(string(data))
	if strings.TrimSpace(expanded) == "" {
		return nil
	}

	dec := yaml.NewDecoder(strings.NewReader(expanded))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stdErrors.Is(err, io.EOF) {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

// applyDefaults fills fields left blank by the file.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Descriptor == "" {
		cfg.Descriptor = def.Descriptor
	}
	if cfg.Namespace == "" {
		cfg.Namespace = def.Namespace
	}
	if cfg.Variable == "" {
		cfg.Variable = def.Variable
	}
	if len(cfg.Layout.ResourceSegments) == 0 {
		cfg.Layout.ResourceSegments = def.Layout.ResourceSegments
	}
	if cfg.Layout.ArchiveDir == "" {
		cfg.Layout.ArchiveDir = def.Layout.ArchiveDir
	}
	if cfg.Layout.ArchivePrefix == "" {
		cfg.Layout.ArchivePrefix = def.Layout.ArchivePrefix
	}
	if cfg.Layout.ArchiveExt == "" {
		cfg.Layout.ArchiveExt = def.Layout.ArchiveExt
	}
	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	cfg.Logging.Format = NormalizeLogFormat(string(cfg.Logging.Format))
}

// Validate checks fields that cannot be defaulted away.
func (c *Config) Validate() error {
	if strings.ContainsAny(c.Variable, "= \t\n") {
		return derrors.ValidationFailed("variable", "must not contain '=' or whitespace")
	}
	if _, err := envpath.ParsePlatform(c.Platform); err != nil {
		return derrors.ValidationFailed("platform", err.Error())
	}
	if _, err := logFormatNormalizer.NormalizeWithError(string(c.Logging.Format)); err != nil {
		return derrors.ValidationFailed("logging.format", err.Error())
	}
	return nil
}

// PathPlatform returns the parsed platform. Validate must have passed.
func (c *Config) PathPlatform() envpath.Platform {
	p, err := envpath.ParsePlatform(c.Platform)
	if err != nil {
		return envpath.PlatformAuto
	}
	return p
}

// Separator returns the list separator for the configured platform.
func (c *Config) Separator() rune {
	return c.PathPlatform().Separator()
}

// Init writes the default configuration to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return derrors.ValidationFailed("config", fmt.Sprintf("configuration file already exists: %s (use --force to overwrite)", path))
	}

	var buf bytes.Buffer
	buf.WriteString("# rslenv configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return derrors.InternalError("encode default configuration", err)
	}
	if err := enc.Close(); err != nil {
		return derrors.InternalError("encode default configuration", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil { //nolint:gosec // config is not secret.
		return derrors.ConfigInvalid(path, err)
	}
	return nil
}
