package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/query"
)

var teamSeasonFlag string

var teamCmd = &cobra.Command{
	Use:   "team <name>",
	Short: "Show one team's summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeam,
}

func init() {
	teamCmd.Flags().StringVar(&teamSeasonFlag, "season", "", "restrict to one season")
}

func runTeam(cmd *cobra.Command, args []string) error {
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

	if teamSeasonFlag != "" {
		season, err := query.ParseSeason(teamSeasonFlag)
		if err != nil {
			return err
		}
		r, err := svc.TeamSeason(name, season)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(r)
		}
		fmt.Fprintf(os.Stdout, "\n=== %s, season %d ===\n\n", r.Team, r.Season)
		renderKV([][2]string{
			{"Matches played", itoa(r.TotalMatchesPlayed)},
			{"Super overs", itoa(r.TotalSuperOversPlayed)},
			{"Titles won", itoa(r.TitlesWon)},
			{"Best batting (match)", fmt.Sprintf("%s (%d)", r.HighestRunsBatsmanName, r.HighestRuns)},
			{"Best bowling (match)", fmt.Sprintf("%s (%d)", r.HighestWicketsBowlerName, r.HighestWickets)},
			{"Highest innings", optInt(r.HighestScore)},
			{"Lowest innings", optInt(r.LowestScore)},
			{"Won / drawn / lost", fmt.Sprintf("%d / %d / %d", r.Outcomes.Won, r.Outcomes.Drawn, r.Outcomes.Lost)},
		})
		renderLeaderboard("Top Batsmen", "RUNS", r.Top5Batsmen)
		renderLeaderboard("Top Bowlers", "WICKETS", r.Top5Bowlers)
		return nil
	}

	r, err := svc.TeamOverall(name)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(r)
	}
	fmt.Fprintf(os.Stdout, "\n=== %s ===\n\n", r.Team)
	renderKV([][2]string{
		{"Seasons played", itoa(r.TotalSeasonsPlayed)},
		{"Matches played", itoa(r.TotalMatchesPlayed)},
		{"Titles won", itoa(r.TotalTitlesWon)},
		{"Best batting (match)", fmt.Sprintf("%s (%d)", r.HighestRunsBatsmanName, r.HighestRuns)},
		{"Best bowling (match)", fmt.Sprintf("%s (%d)", r.HighestWicketsBowlerName, r.HighestWickets)},
		{"Highest innings", optInt(r.HighestScore)},
		{"Lowest innings", optInt(r.LowestScore)},
		{"Won / drawn / lost", fmt.Sprintf("%d / %d / %d", r.Outcomes.Won, r.Outcomes.Drawn, r.Outcomes.Lost)},
	})
	renderLeaderboard("Top Batsmen", "RUNS", r.Top5Batsmen)
	renderLeaderboard("Top Bowlers", "WICKETS", r.Top5Bowlers)
	return nil
}
