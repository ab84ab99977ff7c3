package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/query"
)

var matchupSeasonFlag string

var matchupCmd = &cobra.Command{
	Use:   "matchup <team1> <team2>",
	Short: "Show the head-to-head summary of two teams",
	Args:  cobra.ExactArgs(2),
	RunE:  runMatchup,
}

func init() {
	matchupCmd.Flags().StringVar(&matchupSeasonFlag, "season", "", "restrict to one season")
}

func runMatchup(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	team1, team2 := args[0], args[1]

	if matchupSeasonFlag != "" {
		season, err := query.ParseSeason(matchupSeasonFlag)
		if err != nil {
			return err
		}
		r, err := svc.MatchupSeason(team1, team2, season)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(r)
		}
		fmt.Fprintf(os.Stdout, "\n=== %s vs %s, season %d ===\n\n", r.Team1, r.Team2, r.Season)
		renderKV([][2]string{
			{"Matches played", itoa(r.TotalMatchesPlayed)},
			{"Super overs", itoa(r.TotalSuperOversPlayed)},
			{"Best batting (match)", fmt.Sprintf("%s (%d)", r.HighestRunsBatsmanName, r.HighestRuns)},
			{"Best bowling (match)", fmt.Sprintf("%s (%d)", r.HighestWicketsBowlerName, r.HighestWickets)},
			{"Highest innings", fmt.Sprintf("%s %d", r.HighestScoreName, r.HighestScore)},
			{"Lowest innings", fmt.Sprintf("%s %d", r.LowestScoreName, r.LowestScore)},
			{"Won by " + r.Team1, itoa(r.WonByTeam1)},
			{"Won by " + r.Team2, itoa(r.WonByTeam2)},
			{"Drawn", itoa(r.Drawn)},
			{r.Team1 + " players", strings.Join(r.Team1Players, ", ")},
			{r.Team2 + " players", strings.Join(r.Team2Players, ", ")},
		})
		renderLeaderboard("Top Batsmen", "RUNS", r.Top5Batsmen)
		renderLeaderboard("Top Bowlers", "WICKETS", r.Top5Bowlers)
		return nil
	}

	r, err := svc.Matchup(team1, team2)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(r)
	}
	fmt.Fprintf(os.Stdout, "\n=== %s vs %s ===\n\n", r.Team1, r.Team2)
	renderKV([][2]string{
		{"Seasons played", itoa(r.TotalSeasonsPlayed)},
		{"Matches played", itoa(r.TotalMatchesPlayed)},
		{"Super overs", itoa(r.TotalSuperOversPlayed)},
		{"Best batting (match)", fmt.Sprintf("%s (%d)", r.HighestRunsBatsmanName, r.HighestRuns)},
		{"Best bowling (match)", fmt.Sprintf("%s (%d)", r.HighestWicketsBowlerName, r.HighestWickets)},
		{"Highest innings", fmt.Sprintf("%s %d", r.HighestScoreName, r.HighestScore)},
		{"Lowest innings", fmt.Sprintf("%s %d", r.LowestScoreName, r.LowestScore)},
		{"Won by " + r.Team1, itoa(r.WonByTeam1)},
		{"Won by " + r.Team2, itoa(r.WonByTeam2)},
		{"Drawn", itoa(r.Drawn)},
	})
	renderLeaderboard("Top Batsmen", "RUNS", r.Top5Batsmen)
	renderLeaderboard("Top Bowlers", "WICKETS", r.Top5Bowlers)
	return nil
}
