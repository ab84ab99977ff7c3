package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/query"
)

var batsmanSeasonFlag string

var batsmanCmd = &cobra.Command{
	Use:   "batsman <name>",
	Short: "Show a batter's record",
	Args:  cobra.ExactArgs(1),
	RunE:  runBatsman,
}

func init() {
	batsmanCmd.Flags().StringVar(&batsmanSeasonFlag, "season", "", "restrict to one season")
}

func runBatsman(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	name := args[0]

	if batsmanSeasonFlag != "" {
		season, err := query.ParseSeason(batsmanSeasonFlag)
		if err != nil {
			return err
		}
		r, err := svc.BatsmanSeason(name, season)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(r)
		}
		fmt.Fprintf(os.Stdout, "\n=== %s, season %d ===\n\n", r.Batsman, r.Season)
		renderKV([][2]string{
			{"Team", r.PlayingIn},
			{"Matches", itoa(r.TotalMatchesPlayed)},
			{"Runs", itoa(r.TotalRuns)},
			{"Fours / sixes", fmt.Sprintf("%d / %d", r.TotalFours, r.TotalSixes)},
			{"Average", metricCell(r.Average)},
			{"Strike rate", metricCell(r.StrikeRate)},
			{"Fifties / centuries", fmt.Sprintf("%d / %d", r.TotalFifties, r.TotalCenturies)},
			{"Highest score", itoa(r.HighestScore)},
			{"Player of the match", itoa(r.TotalMOM)},
		})
		renderTeamSeries("Runs Against Teams", "RUNS", r.RunsAgainstAllTeams)
		renderMatchSeries("Match-wise Runs", "RUNS", r.MatchWiseRuns)
		return nil
	}

	r, err := svc.BatsmanOverall(name)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(r)
	}
	fmt.Fprintf(os.Stdout, "\n=== %s ===\n\n", r.Batsman)
	renderKV([][2]string{
		{"Team", r.PlayingIn},
		{"Former teams", strings.Join(r.PlayedIn, ", ")},
		{"Seasons", itoa(r.TotalSeasonsPlayed)},
		{"Matches", itoa(r.TotalMatchesPlayed)},
		{"Runs", itoa(r.TotalRuns)},
		{"Fours / sixes", fmt.Sprintf("%d / %d", r.TotalFours, r.TotalSixes)},
		{"Average", metricCell(r.Average)},
		{"Strike rate", metricCell(r.StrikeRate)},
		{"Fifties / centuries", fmt.Sprintf("%d / %d", r.TotalFifties, r.TotalCenturies)},
		{"Highest score", itoa(r.HighestScore)},
		{"Player of the match", itoa(r.TotalMOM)},
	})
	renderSeasonSeries("Season-wise Runs", "RUNS", r.SeasonWiseRuns)
	return nil
}
