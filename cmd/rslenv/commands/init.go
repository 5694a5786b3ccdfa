package commands

import (
	"fmt"
	"path/filepath"

	"git.home.luguber.info/inful/rslenv/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		dir, err := root.workDir(g)
		if err != nil {
			return err
		}
		path = filepath.Join(dir, config.DefaultFile)
	}

	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	_, err := fmt.Fprintf(g.out(), "Wrote configuration to %s\n", path)
	return err
}
