package commands

import (
	stdErrors "errors"
	"fmt"
	"os"
	"os/exec"

	"git.home.luguber.info/inful/rslenv/internal/envpath"
	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
	"git.home.luguber.info/inful/rslenv/internal/logfields"
)

// ExitCodeError carries a child process exit status through kong's Run.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.Code)
}

// ExecCmd implements the 'exec' command: update the variable in this
// process and start the command, which inherits it.
type ExecCmd struct {
	Command []string `arg:"" passthrough:"" name:"command" help:"Command and arguments to run"`
}

func (e *ExecCmd) Run(g *Global, root *CLI) error {
	svc, _, err := root.service(g)
	if err != nil {
		return err
	}

	value, err := svc.SetEnv()
	if err != nil {
		return err
	}

	args := e.Command
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return derrors.ValidationFailed("command", "no command given")
	}

	cmd := exec.CommandContext(g.context(), args[0], args[1:]...) //nolint:gosec // running the user's command is the point.
	cmd.Dir = svc.WorkDir()
	cmd.Env = envpath.Environ(os.Environ(), svc.Variable(), value)
	cmd.Stdin = os.Stdin
	cmd.Stdout = g.out()
	cmd.Stderr = g.errOut()

	g.logger().Debug("Starting command", logfields.Command(args[0]), logfields.Variable(svc.Variable()))

	err = cmd.Run()
	var exitErr *exec.ExitError
	if stdErrors.As(err, &exitErr) {
		g.logger().Debug("Command failed", logfields.Command(args[0]), logfields.ExitCode(exitErr.ExitCode()))
		return &ExitCodeError{Code: exitErr.ExitCode()}
	}
	if err != nil {
		return derrors.Wrap(err, derrors.CategoryRuntime, derrors.SeverityFatal, "failed to start command").
			WithContext("command", args[0])
	}
	return nil
}
