package commands

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dealerbooks/dealerbooks/internal/backend"
	"github.com/dealerbooks/dealerbooks/internal/config"
)

// EnvPassword supplies the login password when --password is not given.
const EnvPassword = "DEALERBOOKS_PASSWORD"

func newLoginCommand(opts *globalOptions) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the backend and save the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if password == "" {
				password = os.Getenv(EnvPassword)
			}
			if password == "" {
				return fmt.Errorf("password required (--password or %s)", EnvPassword)
			}
			if cfg.Backend.BaseURL == "" {
				return errors.New("backend.base_url is not configured")
			}

			client := newClient(cfg, logger)
			session, err := client.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}
			if err := backend.SaveSession(cfg.Backend.SessionFile, session); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&password, "password", "", "account password")

	return cmd
}

func newClient(cfg *config.Config, logger *zap.Logger) *backend.Client {
	return backend.NewClient(cfg.Backend.BaseURL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(logger),
	)
}

// remoteClient builds a client and picks the session: the --token flag, then
// DEALERBOOKS_TOKEN, then the saved session file.
func remoteClient(cfg *config.Config, logger *zap.Logger, token string) (*backend.Client, backend.Session, error) {
	if cfg.Backend.BaseURL == "" {
		return nil, backend.Session{}, errors.New("backend.base_url is not configured")
	}

	if token == "" {
		token = cfg.Token
	}
	var session backend.Session
	if token != "" {
		session = backend.Session{Token: strings.TrimSpace(token)}
	} else {
		s, err := backend.LoadSession(cfg.Backend.SessionFile)
		if err != nil {
			return nil, backend.Session{}, fmt.Errorf("no session, run login first: %w", err)
		}
		session = s
	}
	return newClient(cfg, logger), session, nil
}
