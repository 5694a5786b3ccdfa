package commands

import (
	"fmt"

	derrors "git.home.luguber.info/inful/rslenv/internal/errors"
	"git.home.luguber.info/inful/rslenv/internal/logfields"
)

// PathsCmd implements the 'paths' command.
type PathsCmd struct {
	Check bool `help:"Fail if either path does not exist on disk"`
}

func (p *PathsCmd) Run(g *Global, root *CLI) error {
	svc, _, err := root.service(g)
	if err != nil {
		return err
	}

	paths, err := svc.Paths()
	if err != nil {
		return err
	}

	for _, e := range paths.Entries() {
		if _, err := fmt.Fprintln(g.out(), e); err != nil {
			return err
		}
	}

	if p.Check {
		missing := paths.Missing()
		for _, m := range missing {
			g.logger().Warn("Search path entry does not exist", logfields.Path(m))
		}
		if len(missing) > 0 {
			return derrors.PathsMissing(missing)
		}
	}
	return nil
}
