package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rslenv/internal/envpath"
	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
	"git.home.luguber.info/inful/rslenv/internal/layout"
	"git.home.luguber.info/inful/rslenv/internal/pom"
)

// clearOverrides isolates a test from RSLENV_* values in the caller's shell.
func clearOverrides(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvDescriptor, EnvNamespace, EnvVariable, EnvPlatform, EnvLogLevel} {
		t.Setenv(k, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	clearOverrides(t)

	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFile), false)
	require.NoError(t, err)
	require.Equal(t, pom.DefaultPath, cfg.Descriptor)
	require.Equal(t, pom.DefaultNamespace, cfg.Namespace)
	require.Equal(t, envpath.DefaultVariable, cfg.Variable)
	require.Equal(t, layout.Default(), cfg.Layout)
	require.Equal(t, LogLevelInfo, cfg.Logging.Level)
	require.Equal(t, LogFormatText, cfg.Logging.Format)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	clearOverrides(t)

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.Error(t, err)
	require.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestLoad_FileValues(t *testing.T) {
	clearOverrides(t)
	path := writeConfig(t, `
descriptor: build/pom.xml
variable: ROBOT_PYTHONPATH
platform: Windows
layout:
  archive_prefix: swinglib
logging:
  level: DEBUG
  format: json
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, "build/pom.xml", cfg.Descriptor)
	require.Equal(t, "ROBOT_PYTHONPATH", cfg.Variable)
	require.Equal(t, envpath.PlatformWindows, cfg.PathPlatform())
	require.Equal(t, ';', cfg.Separator())
	require.Equal(t, "swinglib", cfg.Layout.ArchivePrefix)
	require.Equal(t, "target", cfg.Layout.ArchiveDir)
	require.Equal(t, layout.Default().ResourceSegments, cfg.Layout.ResourceSegments)
	require.Equal(t, LogLevelDebug, cfg.Logging.Level)
	require.Equal(t, LogFormatJSON, cfg.Logging.Format)
	require.Equal(t, pom.DefaultNamespace, cfg.Namespace)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	clearOverrides(t)
	t.Setenv("RSL_TEST_PREFIX", "expanded")
	path := writeConfig(t, "layout:\n  archive_prefix: ${RSL_TEST_PREFIX}\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, "expanded", cfg.Layout.ArchivePrefix)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearOverrides(t)
	t.Setenv(EnvVariable, "CLASSPATH")
	t.Setenv(EnvPlatform, "posix")
	path := writeConfig(t, "variable: FROM_FILE\nplatform: windows\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, "CLASSPATH", cfg.Variable)
	require.Equal(t, ':', cfg.Separator())
}

func TestLoad_CommentOnlyFile(t *testing.T) {
	clearOverrides(t)
	path := writeConfig(t, "# nothing here\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, envpath.DefaultVariable, cfg.Variable)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown field":  "varaible: X\n",
		"bad yaml":       "variable: [unterminated\n",
		"bad platform":   "platform: amiga\n",
		"bad variable":   "variable: \"A=B\"\n",
		"bad log format": "logging:\n  format: xml\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			clearOverrides(t)
			_, err := Load(writeConfig(t, content), true)
			require.Error(t, err)
			_, ok := derrors.As(err)
			require.True(t, ok, "expected structured error, got %v", err)
		})
	}
}

func TestInit_WritesLoadableDefaults(t *testing.T) {
	clearOverrides(t)
	path := filepath.Join(t.TempDir(), DefaultFile)

	require.NoError(t, Init(path, false))
	cfg, err := Load(path, true)
	require.NoError(t, err)
	require.Equal(t, Default().Layout, cfg.Layout)

	err = Init(path, false)
	require.True(t, derrors.IsCategory(err, derrors.CategoryValidation))
	require.NoError(t, Init(path, true))
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RSL_ENVFILE_A=from-env\nRSL_ENVFILE_KEEP=file\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ci.env"), []byte("RSL_ENVFILE_B=from-ci\n"), 0o600))

	t.Setenv("RSL_ENVFILE_KEEP", "shell")
	t.Setenv("RSL_ENVFILE_A", "")
	t.Setenv("RSL_ENVFILE_B", "")
	require.NoError(t, os.Unsetenv("RSL_ENVFILE_A"))
	require.NoError(t, os.Unsetenv("RSL_ENVFILE_B"))

	loaded, err := LoadEnvFiles(dir, "ci.env")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, ".env"), filepath.Join(dir, "ci.env")}, loaded)
	require.Equal(t, "from-env", os.Getenv("RSL_ENVFILE_A"))
	require.Equal(t, "from-ci", os.Getenv("RSL_ENVFILE_B"))
	require.Equal(t, "shell", os.Getenv("RSL_ENVFILE_KEEP"))
}

func TestLoadEnvFiles_MissingExtra(t *testing.T) {
	_, err := LoadEnvFiles(t.TempDir(), "missing.env")
	require.Error(t, err)
}

func TestNormalizeLogging(t *testing.T) {
	require.Equal(t, LogLevelWarn, NormalizeLogLevel(" Warning "))
	require.Equal(t, LogLevelInfo, NormalizeLogLevel("chatty"))
	require.Equal(t, LogFormatJSON, NormalizeLogFormat("JSON"))
	require.Equal(t, LogFormatText, NormalizeLogFormat(""))
}
