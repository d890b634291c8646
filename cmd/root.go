package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/killallgit/rofind-api/pkg/config"
	"github.com/killallgit/rofind-api/pkg/log"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rofind",
	Short: "RoFind game search API",
	Long: `RoFind API - search orchestration for a game discovery service

Sits between clients and the search backend: builds backend requests,
transforms and highlights hits, paginates results and derives filter
facets from the index aggregations.

Features:
  • Paginated search with optional query enhancement and timeout fallback
  • Genre, creator and player-count facets
  • Top categories and trending games
  • HTTP API with swagger docs, plus CLI search for debugging`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (trace, debug, info, warn, error); overrides config")
	rootCmd.PersistentFlags().Bool("pretty-logs", false, "human readable console logs instead of JSON")
}

// setup loads configuration and initialises logging before any command runs.
// Commands annotated with skipConfig only get a logger.
func setup(cmd *cobra.Command, _ []string) error {
	logCfg := config.LoggingConfig{Level: "info"}

	if cmd.Annotations[skipConfig] != "true" {
		if err := config.Init(); err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		cfg, err := config.GetConfig()
		if err != nil {
			return err
		}
		logCfg = cfg.Logging
	}

	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		logCfg.Level = f.Value.String()
	}
	if pretty, _ := cmd.Flags().GetBool("pretty-logs"); pretty {
		logCfg.Pretty = true
	}

	log.Init(log.Config{
		Level:       logCfg.Level,
		Pretty:      logCfg.Pretty,
		ServiceName: "rofind-api",
	})
	log.SetLevel(logCfg.Level)
	return nil
}

const skipConfig = "skip-config"
