package commands

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/AbhimanyuAhuja12/saleslog-cli/internal/config"
)

// NewConfigCommand shows or updates the client configuration.
func NewConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show or change client configuration",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			path, _ := config.GetConfigPath()
			fmt.Printf("Config file: %s\n", path)
			if cfg.APIBaseURL == "" {
				fmt.Println("API base URL: (default)")
			} else {
				fmt.Printf("API base URL: %s\n", cfg.APIBaseURL)
			}
			return nil
		},
		Subcommands: []*cli.Command{
			{
				Name:      "set-url",
				Usage:     "Set the API base URL",
				ArgsUsage: "[url]",
				Action: func(c *cli.Context) error {
					if c.NArg() == 0 {
						return fmt.Errorf("URL is required")
					}
					cfg, err := config.LoadConfig()
					if err != nil {
						return err
					}
					cfg.APIBaseURL = c.Args().First()
					if err := config.SaveConfig(cfg); err != nil {
						return err
					}
					fmt.Printf("✅ API base URL set to %s\n", cfg.APIBaseURL)
					return nil
				},
			},
		},
	}
}
