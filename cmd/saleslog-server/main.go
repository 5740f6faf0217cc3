package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/AbhimanyuAhuja12/saleslog-cli/api"
	"github.com/AbhimanyuAhuja12/saleslog-cli/pkg/config"
	"github.com/AbhimanyuAhuja12/saleslog-cli/pkg/repository"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "saleslog-server",
		Short: "Sales Log API server",
		Long:  `saleslog-server hosts the REST API the saleslog client talks to, backed by PostgreSQL.`,
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("config: %v", err)
			}

			db, err := repository.NewDatabase(cfg)
			if err != nil {
				log.Fatalf("database: %v", err)
			}

			r := api.NewRouter(db)
			addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
			log.Printf("listening on %s", addr)
			if err := r.Run(addr); err != nil {
				log.Fatalf("server: %v", err)
			}
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				log.Fatalf("config: %v", err)
			}

			// NewDatabase migrates on connect.
			if _, err := repository.NewDatabase(cfg); err != nil {
				log.Fatalf("migrate: %v", err)
			}
			fmt.Println("✅ Schema up to date")
		},
	}
}
