package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/query"
	"github.com/legside/cricstats/internal/reports"
)

var (
	teamsSeasonFlag string
	teamsOfFlag     string
)

var teamsCmd = &cobra.Command{
	Use:   "teams",
	Short: "List teams, optionally a season's teams or one team's opponents",
	Args:  cobra.NoArgs,
	RunE:  runTeams,
}

func init() {
	teamsCmd.Flags().StringVar(&teamsSeasonFlag, "season", "", "teams that played in this season")
	teamsCmd.Flags().StringVar(&teamsOfFlag, "of", "", "opponents this team has faced")
}

func runTeams(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	var r *reports.TeamList
	switch {
	case teamsSeasonFlag != "" && teamsOfFlag != "":
		season, err := query.ParseSeason(teamsSeasonFlag)
		if err != nil {
			return err
		}
		r, err = svc.TeamsPerSeasonTeam(season, teamsOfFlag)
		if err != nil {
			return err
		}
	case teamsSeasonFlag != "":
		season, err := query.ParseSeason(teamsSeasonFlag)
		if err != nil {
			return err
		}
		r, err = svc.TeamsPerSeason(season)
		if err != nil {
			return err
		}
	case teamsOfFlag != "":
		r, err = svc.TeamsPerTeam(teamsOfFlag)
		if err != nil {
			return err
		}
	default:
		overall, err := svc.Overall()
		if err != nil {
			return err
		}
		r = &reports.TeamList{Teams: overall.Teams}
	}

	if jsonOut {
		return printJSON(r)
	}
	for _, team := range r.Teams {
		fmt.Fprintln(os.Stdout, team)
	}
	return nil
}
