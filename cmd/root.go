package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/nvasanth/candex/internal/api"
	"github.com/nvasanth/candex/internal/auth"
	"github.com/nvasanth/candex/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "candex",
	Short: "Terminal client for candidate assessments",
	Long:  "Candex — terminal client that runs proctored candidate assessments: mcq, psychometric, technical, and text-based rounds.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// Optional .env in the working directory; real env wins.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite event log file (overrides CANDEX_DB env var)")
	rootCmd.PersistentFlags().String("api-url", "", "Assessment service base URL (overrides CANDEX_API_URL env var)")
	rootCmd.Flags().String("assessment", "", "Assessment id to run (overrides CANDEX_ASSESSMENT_ID env var)")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the event log path using --db flag (highest
// priority), then CANDEX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveAPIConfig builds the client config from env with the --api-url
// flag taking priority.
func resolveAPIConfig(cmd *cobra.Command) (api.Config, error) {
	cfg := api.ConfigFromEnv()
	if u, _ := cmd.Flags().GetString("api-url"); u != "" {
		cfg.BaseURL = u
	}
	return cfg, cfg.Validate()
}

// resolveAssessmentID returns the assessment to run: --assessment flag,
// then CANDEX_ASSESSMENT_ID, then the backend's "current" alias.
func resolveAssessmentID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("assessment"); id != "" {
		return id
	}
	if id := os.Getenv("CANDEX_ASSESSMENT_ID"); id != "" {
		return id
	}
	return "current"
}

// newBackend builds the retrying API client with the stored candidate
// token and the event-log request logger.
func newBackend(cmd *cobra.Command, logger api.RequestLogger) (api.Backend, error) {
	cfg, err := resolveAPIConfig(cmd)
	if err != nil {
		return nil, err
	}

	if token, err := auth.LoadToken(); err == nil && token != "" {
		if err := auth.CheckExpiry(token, time.Now()); err != nil {
			fmt.Fprintln(os.Stderr, "warning:", err)
			fmt.Fprintln(os.Stderr, "Run: candex login")
		}
	}

	return api.NewClient(cfg, auth.LoadToken, logger)
}
