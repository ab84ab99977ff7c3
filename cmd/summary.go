package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/storage"
)

// summaryCmd displays a high-level overview of the database.
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show a high-level overview of the database",
	Long: `Display aggregate statistics about the stored dataset: delivery, match,
season and team counts, plus the all-time leaderboards.`,
	Args: cobra.NoArgs,
	RunE: runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ov, err := db.Overview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	if ov.Deliveries == 0 {
		fmt.Fprintln(os.Stdout, "No deliveries stored yet. Run 'cricstats import <file.csv>' to add a dataset.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "\n=== Database Summary ===\n\n")
	renderKV([][2]string{
		{"Deliveries", itoa(ov.Deliveries)},
		{"Matches", itoa(ov.Matches)},
		{"Seasons", itoa(ov.Seasons)},
		{"Teams", itoa(ov.Teams)},
	})

	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	overall, err := svc.Overall()
	if err != nil {
		return err
	}
	renderLeaderboard("Top Batsmen", "RUNS", overall.Top5Batsmen)
	renderLeaderboard("Top Bowlers", "WICKETS", overall.Top5Bowlers)
	renderLeaderboard("Titles", "TITLES", overall.TitleWinners)
	return nil
}
