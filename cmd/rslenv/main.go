// Command rslenv prepares the search path used by the RemoteSwingLibrary
// acceptance tests. Run without arguments it prints the current PYTHONPATH.
package main

import (
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/rslenv/cmd/rslenv/commands"
	"git.home.luguber.info/inful/rslenv/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("rslenv"),
		kong.Description("Compose the RemoteSwingLibrary acceptance search path from pom.xml."),
		kong.Vars{"version": version.String()},
		kong.UsageOnError(),
	)

	err := ctx.Run(&commands.Global{}, &cli)
	os.Exit(commands.ExitCode(err, cli.Verbose))
}
