package commands

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"

	"git.home.luguber.info/inful/rslenv/internal/envpath"
)

// Export formats.
const (
	FormatShell  = "shell"
	FormatDotenv = "dotenv"
	FormatPlain  = "plain"
)

// ExportCmd implements the 'export' command. It prints what the update
// would produce; a child process cannot change its parent's environment, so
// the output is meant to be eval'd or sourced.
type ExportCmd struct {
	Format string `short:"f" enum:"shell,dotenv,plain" default:"shell" help:"Output format (shell, dotenv, plain)"`
}

func (e *ExportCmd) Run(g *Global, root *CLI) error {
	svc, cfg, err := root.service(g)
	if err != nil {
		return err
	}

	value, err := svc.Preview()
	if err != nil {
		return err
	}

	line, err := FormatAssignment(e.Format, cfg.PathPlatform().Resolve(), cfg.Variable, value)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(g.out(), line)
	return err
}

// FormatAssignment renders name=value in the requested format.
func FormatAssignment(format string, platform envpath.Platform, name, value string) (string, error) {
	switch format {
	case FormatPlain:
		return value, nil
	case FormatDotenv:
		return godotenv.Marshal(map[string]string{name: value})
	case FormatShell, "":
		if platform == envpath.PlatformWindows {
			return fmt.Sprintf(`set "%s=%s"`, name, value), nil
		}
		return fmt.Sprintf("export %s=%s", name, shellQuote(value)), nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
