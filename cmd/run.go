package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvasanth/candex/internal/api"
	"github.com/nvasanth/candex/internal/app"
	"github.com/nvasanth/candex/internal/store"
)

// runApp opens the event log, builds the backend client, and launches
// the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	backend, err := newBackend(cmd, api.NewEventLogger(eventRepo))
	if err != nil {
		return fmt.Errorf("build backend client: %w", err)
	}

	return app.Run(app.Deps{
		Backend:      backend,
		Events:       eventRepo,
		AssessmentID: resolveAssessmentID(cmd),
	})
}
