package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/dataset"
	"github.com/legside/cricstats/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import [deliveries.csv]",
	Short: "Import a ball-by-ball CSV into the database",
	Long: `Read a ball-by-ball delivery CSV and store it in the SQLite database,
replacing any previously imported dataset. Every other command queries
the stored dataset, so run this first.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	path := cfg.DatasetPath
	if len(args) == 1 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(os.Stdout, "Importing %s...\n", path)
	rows, err := dataset.ReadDeliveries(f)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.ReplaceDeliveries(rows); err != nil {
		return fmt.Errorf("store deliveries: %w", err)
	}

	ov, err := db.Overview()
	if err != nil {
		return fmt.Errorf("get overview: %w", err)
	}
	color.New(color.FgGreen).Fprintf(os.Stdout,
		"Imported %d deliveries: %d matches, %d seasons, %d teams\n",
		ov.Deliveries, ov.Matches, ov.Seasons, ov.Teams)
	return nil
}
