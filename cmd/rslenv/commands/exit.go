package commands

import (
	stdErrors "errors"
	"log/slog"

	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
)

// ExitCode reports err on stderr and returns the process exit status.
// Child exit codes from 'exec' pass through unchanged.
func ExitCode(err error, verbose bool) int {
	if err == nil {
		return 0
	}
	var ece *ExitCodeError
	if stdErrors.As(err, &ece) {
		return ece.Code
	}
	return derrors.NewCLIErrorAdapter(verbose, slog.Default()).Report(err)
}
