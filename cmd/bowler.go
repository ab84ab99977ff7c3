package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/query"
)

var bowlerSeasonFlag string

var bowlerCmd = &cobra.Command{
	Use:   "bowler <name>",
	Short: "Show a bowler's record",
	Args:  cobra.ExactArgs(1),
	RunE:  runBowler,
}

func init() {
	bowlerCmd.Flags().StringVar(&bowlerSeasonFlag, "season", "", "restrict to one season")
}

func runBowler(cmd *cobra.Command, args []string) error {
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

	if bowlerSeasonFlag != "" {
		season, err := query.ParseSeason(bowlerSeasonFlag)
		if err != nil {
			return err
		}
		r, err := svc.BowlerSeason(name, season)
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(r)
		}
		fmt.Fprintf(os.Stdout, "\n=== %s, season %d ===\n\n", r.Bowler, r.Season)
		renderKV([][2]string{
			{"Team", r.PlayingIn},
			{"Matches", itoa(r.TotalMatchesPlayed)},
			{"Wickets", itoa(r.TotalWickets)},
			{"Economy", metricCell(r.Economy)},
			{"Average", metricCell(r.Average)},
			{"Strike rate", metricCell(r.StrikeRate)},
			{"Fours / sixes conceded", fmt.Sprintf("%d / %d", r.TotalFours, r.TotalSixes)},
			{"Best figure", r.BestFigure},
			{"3-wicket hauls", itoa(r.TotalW3)},
			{"Player of the match", itoa(r.TotalMOM)},
		})
		renderTeamSeries("Wickets Against Teams", "WICKETS", r.WicketsAgainstAllTeams)
		renderMatchSeries("Match-wise Wickets", "WICKETS", r.MatchWiseWickets)
		return nil
	}

	r, err := svc.BowlerOverall(name)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(r)
	}
	fmt.Fprintf(os.Stdout, "\n=== %s ===\n\n", r.Bowler)
	renderKV([][2]string{
		{"Team", r.PlayingIn},
		{"Former teams", strings.Join(r.PlayedIn, ", ")},
		{"Seasons", itoa(r.TotalSeasonsPlayed)},
		{"Matches", itoa(r.TotalMatchesPlayed)},
		{"Wickets", itoa(r.TotalWickets)},
		{"Economy", metricCell(r.Economy)},
		{"Average", metricCell(r.Average)},
		{"Strike rate", metricCell(r.StrikeRate)},
		{"Fours / sixes conceded", fmt.Sprintf("%d / %d", r.TotalFours, r.TotalSixes)},
		{"Best figure", r.BestFigure},
		{"3-wicket hauls", itoa(r.TotalW3)},
		{"Player of the match", itoa(r.TotalMOM)},
	})
	renderSeasonSeries("Season-wise Wickets", "WICKETS", r.SeasonWiseWickets)
	return nil
}
