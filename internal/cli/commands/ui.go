package commands

import (
	"github.com/urfave/cli/v2"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/tui"
)

// NewUICommand launches the full-screen sales log.
func NewUICommand() *cli.Command {
	return &cli.Command{
		Name:    "ui",
		Aliases: []string{"tui"},
		Usage:   "Open the interactive sales log",
		Action: func(c *cli.Context) error {
			return tui.Run()
		},
	}
}
