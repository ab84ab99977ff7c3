package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/config"
)

var (
	cfgPath string
	dbPath  string
	jsonOut bool
)

var rootCmd = &cobra.Command{
	Use:   "cricstats",
	Short: "Ball-by-ball cricket statistics tool",
	Long: `Import a ball-by-ball delivery dataset and query per-season, per-team,
per-player and head-to-head aggregates: runs, wickets, averages, strike
rates, leaderboards and title counts.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (default .cricstats.yaml in CWD or $HOME)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to SQLite database (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "print structured JSON instead of tables")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(overallCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(matchupCmd)
	rootCmd.AddCommand(batsmanCmd)
	rootCmd.AddCommand(bowlerCmd)
	rootCmd.AddCommand(teamsCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(seasonsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(sqlCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(chartCmd)
}

// settings resolves the effective configuration: file and env via config,
// then the --db flag on top.
func settings() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}
