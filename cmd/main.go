package main

import (
	"fmt"
	"os"

	_ "blogger/docs"
	"blogger/internal/config"
	"blogger/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	v   = viper.New()
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "blogger",
	Short:         "Blog platform REST API",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfigFrom(v)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := logger.Init(cfg); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(*cobra.Command, []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().String("db-host", "", "database host (DB_HOST)")
	rootCmd.PersistentFlags().String("db-name", "", "database name (DB_NAME)")
	rootCmd.PersistentFlags().String("log-level", "", "debug|info|warn|error (LOGLEVEL)")
	_ = v.BindPFlag("DB_HOST", rootCmd.PersistentFlags().Lookup("db-host"))
	_ = v.BindPFlag("DB_NAME", rootCmd.PersistentFlags().Lookup("db-name"))
	_ = v.BindPFlag("LOGLEVEL", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd, migrateCmd, checkUserCmd, createUserCmd)
}

// @title                       Blogger API
// @version                     1.0
// @description                 Blog posts, categories, vendors and ad placements.
// @BasePath                    /
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Log.Error("command failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
