package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvasanth/candex/internal/api"
	"github.com/nvasanth/candex/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange candidate credentials for an access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		code, _ := cmd.Flags().GetString("code")
		if email == "" || code == "" {
			return fmt.Errorf("both --email and --code are required")
		}

		backend, err := newBackend(cmd, api.NopLogger{})
		if err != nil {
			return fmt.Errorf("build backend client: %w", err)
		}

		token, err := backend.Login(cmd.Context(), email, code)
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		if err := auth.SaveToken(token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}

		path, _ := auth.TokenPath()
		fmt.Println("Logged in. Token saved to", path)
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "Candidate email address")
	loginCmd.Flags().String("code", "", "Assessment access code from the invitation")
}
