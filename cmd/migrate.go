package main

import (
	"blogger/internal/db"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate [up|down|status|redo|version]",
	Short: "Run database migrations",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) > 0 {
			command = args[0]
		}

		pool, err := db.NewPostgresConnection(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := db.Migrate(cmd.Context(), pool, command, args[min(1, len(args)):]...); err != nil {
			return err
		}
		if command == "up" {
			return db.VerifyTables(cmd.Context(), pool)
		}
		return nil
	},
}
