package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/query"
	"github.com/legside/cricstats/internal/reports"
)

var (
	playersSeasonFlag string
	playersBowlers    bool
)

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List batsmen (or bowlers with --bowlers)",
	Args:  cobra.NoArgs,
	RunE:  runPlayers,
}

func init() {
	playersCmd.Flags().StringVar(&playersSeasonFlag, "season", "", "restrict to one season")
	playersCmd.Flags().BoolVar(&playersBowlers, "bowlers", false, "list bowlers instead of batsmen")
}

func runPlayers(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	var r *reports.NameList
	if playersSeasonFlag != "" {
		season, err := query.ParseSeason(playersSeasonFlag)
		if err != nil {
			return err
		}
		if playersBowlers {
			r, err = svc.BowlersPerSeason(season)
		} else {
			r, err = svc.BatsmenPerSeason(season)
		}
		if err != nil {
			return err
		}
	} else {
		if playersBowlers {
			r, err = svc.Bowlers()
		} else {
			r, err = svc.Batsmen()
		}
		if err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(r)
	}
	for _, name := range r.Names {
		fmt.Fprintln(os.Stdout, name)
	}
	return nil
}
