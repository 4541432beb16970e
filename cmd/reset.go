package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nvasanth/candex/internal/auth"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the local event log and stored token",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("this deletes the local event log and saved token; rerun with --yes to confirm")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove event log: %w", err)
		}
		// WAL sidecar files, if present.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		if err := auth.DeleteToken(); err != nil {
			return fmt.Errorf("remove token: %w", err)
		}

		fmt.Println("Local data cleared.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm deletion")
}
