package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "1.0.0"

func main() {
	app := &cli.App{
		Name:    "saleslog",
		Usage:   "Sales activity log client",
		Version: Version,
		Commands: []*cli.Command{
			commands.NewListCommand(),
			commands.NewCreateCommand(),
			commands.NewEditCommand(),
			commands.NewNoteCommand(),
			commands.NewStatusCommand(),
			commands.NewDeleteCommand(),
			commands.NewDuplicateCommand(),

			commands.NewOverviewCommand(),
			commands.NewUICommand(),

			commands.NewConfigCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
