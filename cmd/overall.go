package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/query"
)

var overallSeasonFlag string

var overallCmd = &cobra.Command{
	Use:   "overall",
	Short: "Show the tournament-wide summary",
	Args:  cobra.NoArgs,
	RunE:  runOverall,
}

func init() {
	overallCmd.Flags().StringVar(&overallSeasonFlag, "season", "", "restrict to one season")
}

func runOverall(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	if overallSeasonFlag != "" {
		season, err := query.ParseSeason(overallSeasonFlag)
		if err != nil {
			return err
		}
		r, err := svc.OverallSeason(season)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(r)
		}
		fmt.Fprintf(os.Stdout, "\n=== Season %d ===\n\n", season)
		renderKV([][2]string{
			{"Matches played", itoa(r.TotalMatchesPlayed)},
			{"Teams", itoa(r.TotalTeamsPlayed)},
			{"Super overs", itoa(r.TotalSuperOversPlayed)},
			{"Best batting (match)", fmt.Sprintf("%s (%d)", r.HighestRunsBatsmanName, r.HighestRuns)},
			{"Best bowling (match)", fmt.Sprintf("%s (%d)", r.HighestWicketsBowlerName, r.HighestWickets)},
			{"Highest innings", fmt.Sprintf("%s %d", r.HighestTeamScoreName, r.HighestTeamScore)},
			{"Lowest innings", fmt.Sprintf("%s %d", r.LowestTeamScoreName, r.LowestTeamScore)},
			{"Champion", r.WinningTeam},
			{"Teams playing", strings.Join(r.PlayingTeams, ", ")},
		})
		renderLeaderboard("Top Batsmen", "RUNS", r.Top5Batsmen)
		renderLeaderboard("Top Bowlers", "WICKETS", r.Top5Bowlers)
		return nil
	}

	r, err := svc.Overall()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(r)
	}
	fmt.Fprintf(os.Stdout, "\n=== All Seasons ===\n\n")
	renderKV([][2]string{
		{"Seasons played", itoa(r.TotalSeasonsPlayed)},
		{"Teams", itoa(r.TotalTeamsPlayed)},
		{"Matches played", itoa(r.TotalMatchesPlayed)},
		{"Best batting (match)", fmt.Sprintf("%s (%d)", r.HighestRunsBatsmanName, r.HighestRuns)},
		{"Best bowling (match)", fmt.Sprintf("%s (%d)", r.HighestWicketsBowlerName, r.HighestWickets)},
		{"Highest innings", fmt.Sprintf("%s %d", r.HighestTeamScoreName, r.HighestTeamScore)},
		{"Lowest innings", fmt.Sprintf("%s %d", r.LowestTeamScoreName, r.LowestTeamScore)},
		{"All teams", strings.Join(r.Teams, ", ")},
	})
	renderLeaderboard("Top Batsmen", "RUNS", r.Top5Batsmen)
	renderLeaderboard("Top Bowlers", "WICKETS", r.Top5Bowlers)
	renderLeaderboard("Titles", "TITLES", r.TitleWinners)
	return nil
}
