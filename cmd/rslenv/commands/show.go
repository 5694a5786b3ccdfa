package commands

import (
	"fmt"
)

// ShowCmd implements the default command: print the variable as it is now.
// The environment is never modified.
type ShowCmd struct{}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	svc, _, err := root.service(g)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(g.out(), svc.CurrentValue()); err != nil {
		return err
	}

	// The value is printed first; an unusable descriptor still fails the run.
	_, err = svc.Version()
	return err
}
