package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var seasonsCmd = &cobra.Command{
	Use:   "seasons",
	Short: "List the seasons in the dataset",
	Args:  cobra.NoArgs,
	RunE:  runSeasons,
}

func runSeasons(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	svc, closeDB, err := openService(cfg.DBPath)
	if err != nil {
		return err
	}
	defer closeDB()

	seasons, err := svc.Seasons()
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(seasons)
	}
	for _, year := range seasons {
		fmt.Fprintln(os.Stdout, year)
	}
	return nil
}
