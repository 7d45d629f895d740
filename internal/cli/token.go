package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"MiniLibrary/internal/auth"
)

func newTokenCmd(opts *options) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the write routes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is required to mint tokens")
			}

			tok, err := auth.NewTokenMaker(cfg.JWTSecret).New(subject, role, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "cli", "token subject")
	cmd.Flags().StringVar(&role, "role", auth.RoleEditor, "editor or reader")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	return cmd
}
