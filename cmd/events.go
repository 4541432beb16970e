package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nvasanth/candex/internal/store"
)

var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List recent local events (API calls, violations, answers)",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		records, err := s.EventRepo().RecentEvents(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(records) == 0 {
			fmt.Println("No events found.")
			return nil
		}

		fmt.Printf("%-7s  %-19s  %-12s  %s\n", "Seq", "Timestamp", "Kind", "Summary")
		fmt.Println(strings.Repeat("─", 100))

		for _, rec := range records {
			if kind != "" && rec.Kind != kind {
				continue
			}
			fmt.Printf("%-7d  %-19s  %-12s  %s\n",
				rec.Sequence,
				rec.Timestamp.Format("2006-01-02 15:04:05"),
				rec.Kind,
				rec.Summary)
		}
		return nil
	},
}

func init() {
	eventsCmd.Flags().Int("limit", 50, "Maximum number of events to show")
	eventsCmd.Flags().String("kind", "", "Filter by kind: api_request, violation, answer, attempt")
}
