package commands

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/rslenv/internal/config"
	"git.home.luguber.info/inful/rslenv/internal/envpath"
	"git.home.luguber.info/inful/rslenv/internal/envsetup"
	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
	"git.home.luguber.info/inful/rslenv/internal/git"
	"git.home.luguber.info/inful/rslenv/internal/logfields"
)

// Global carries process-wide collaborators into subcommands. Zero fields
// fall back to the real process (stdout, stderr, environment).
type Global struct {
	Logger  *slog.Logger
	Out     io.Writer
	Err     io.Writer
	Store   envpath.Store
	Context context.Context
}

func (g *Global) out() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

func (g *Global) errOut() io.Writer {
	if g.Err == nil {
		return os.Stderr
	}
	return g.Err
}

func (g *Global) store() envpath.Store {
	if g.Store == nil {
		return envpath.Process{}
	}
	return g.Store
}

func (g *Global) context() context.Context {
	if g.Context == nil {
		return context.Background()
	}
	return g.Context
}

func (g *Global) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.Default()
	}
	return g.Logger
}

// CLI definition & global flags.
type CLI struct {
	Config    string           `short:"c" help:"Configuration file path (default: .rslenv.yaml in the working directory)"`
	Verbose   bool             `short:"v" help:"Enable verbose logging"`
	LogFormat string           `name:"log-format" help:"Log output format (text, json)"`
	Dir       string           `short:"C" name:"dir" help:"Run as if started in this directory"`
	RepoRoot  bool             `name:"repo-root" help:"Use the enclosing git worktree root as the working directory"`
	EnvFile   []string         `name:"env-file" help:"Additional dotenv file to load (repeatable)"`
	Variable  string           `name:"variable" help:"Search-path variable to manage (default: PYTHONPATH)"`
	Platform  string           `name:"platform" help:"Path-list separator convention (auto, posix, windows)"`
	Version   kong.VersionFlag `name:"version" help:"Show version and exit"`

	Show   ShowCmd   `cmd:"" default:"1" help:"Print the current value of the search-path variable (default)"`
	Paths  PathsCmd  `cmd:"" help:"Print the acceptance resource directory and library archive path"`
	Export ExportCmd `cmd:"" help:"Print the search-path value with the acceptance paths appended"`
	Exec   ExecCmd   `cmd:"" help:"Run a command with the acceptance paths appended to the search path"`
	Watch  WatchCmd  `cmd:"" help:"Print the updated search path whenever the project version changes"`
	Init   InitCmd   `cmd:"" help:"Write a default configuration file"`
}

// AfterApply runs after flag parsing; set up logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	slog.SetDefault(config.NewLogger(os.Stderr, config.LogLevelInfo, config.LogFormat(c.LogFormat), c.Verbose))
	return nil
}

// workDir resolves --dir and --repo-root into an absolute directory.
func (c *CLI) workDir(g *Global) (string, error) {
	dir := c.Dir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", derrors.WorkingDirError("getwd", err)
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", derrors.WorkingDirError("abs", err)
	}

	if c.RepoRoot {
		root, err := git.FindRoot(abs)
		if err != nil {
			return "", err
		}
		g.logger().Debug("Resolved git worktree root",
			logfields.WorkDir(root.Dir),
			slog.String("head", root.Head))
		abs = root.Dir
	}
	return abs, nil
}

// loadConfig loads env files and the configuration for dir, then applies
// flag overrides.
func (c *CLI) loadConfig(g *Global, dir string) (*config.Config, error) {
	loaded, err := config.LoadEnvFiles(dir, c.EnvFile...)
	if err != nil {
		return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to load env file")
	}
	for _, f := range loaded {
		g.logger().Debug("Loaded environment file", logfields.Path(f))
	}

	path := c.Config
	required := path != ""
	if !required {
		path = filepath.Join(dir, config.DefaultFile)
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return nil, err
	}

	if len(cfg.EnvFiles) > 0 {
		if _, err := config.LoadEnvFiles(dir, cfg.EnvFiles...); err != nil {
			return nil, derrors.Wrap(err, derrors.CategoryConfig, derrors.SeverityFatal, "failed to load env file")
		}
	}

	if c.Variable != "" {
		cfg.Variable = c.Variable
	}
	if c.Platform != "" {
		cfg.Platform = c.Platform
	}
	if c.LogFormat != "" {
		cfg.Logging.Format = config.LogFormat(c.LogFormat)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// service builds the envsetup service for the current invocation and
// reconfigures logging from the loaded configuration.
func (c *CLI) service(g *Global) (*envsetup.Service, *config.Config, error) {
	dir, err := c.workDir(g)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := c.loadConfig(g, dir)
	if err != nil {
		return nil, nil, err
	}

	if g.Logger == nil {
		slog.SetDefault(config.NewLogger(os.Stderr, cfg.Logging.Level, cfg.Logging.Format, c.Verbose))
	}

	g.logger().Debug("Resolved invocation",
		logfields.WorkDir(dir),
		logfields.Variable(cfg.Variable),
		logfields.Platform(string(cfg.PathPlatform().Resolve())))

	return envsetup.New(cfg, dir, g.store()).WithLogger(g.logger()), cfg, nil
}
