package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/legside/cricstats/internal/storage"
)

var resetForce bool

// resetCmd clears the imported dataset.
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the imported dataset",
	Long:  "Remove every stored delivery from the database. Re-run the import afterwards to rebuild.",
	Args:  cobra.NoArgs,
	RunE:  runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip confirmation prompt")
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg, err := settings()
	if err != nil {
		return err
	}
	if !resetForce {
		fmt.Fprintf(os.Stderr, "This will delete every imported delivery in: %s\n", cfg.DBPath)
		fmt.Fprintf(os.Stderr, "Re-run with --force to confirm.\n")
		return nil
	}
	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	if err := db.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}
	fmt.Fprintf(os.Stdout, "Dataset cleared: %s\n", cfg.DBPath)
	return nil
}
