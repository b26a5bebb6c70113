package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/greencampus/emission-engine/internal/auth"
)

const minSecretLen = 32

type tokenOptions struct {
	user   string
	secret string
	issuer string
	ttl    time.Duration
}

type tokenOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func newTokenCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user (testing and operations)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(opts.user)
			if err != nil || userID == uuid.Nil {
				return errors.New("--user must be a non-nil UUID")
			}
			if len(opts.secret) < minSecretLen {
				return fmt.Errorf("secret must be at least %d characters (set --secret or AUTH_JWT_SECRET)", minSecretLen)
			}
			if opts.ttl <= 0 {
				return errors.New("--ttl must be positive")
			}

			expires := time.Now().Add(opts.ttl).UTC().Truncate(time.Second)
			token, err := auth.NewTokenManager(opts.secret, opts.issuer, opts.ttl).Issue(userID)
			if err != nil {
				return err
			}

			out := tokenOutput{Token: token, ExpiresAt: expires}
			return newPrinter(rootOpts, cmd.OutOrStdout()).print(out, []field{
				{"token", out.Token},
				{"expiresAt", out.ExpiresAt.Format(time.RFC3339)},
			})
		},
	}

	cmd.Flags().StringVar(&opts.user, "user", "", "user ID placed in the token subject")
	cmd.Flags().StringVar(&opts.secret, "secret", os.Getenv("AUTH_JWT_SECRET"), "HS256 signing secret")
	cmd.Flags().StringVar(&opts.issuer, "issuer", "greencampus", "token issuer")
	cmd.Flags().DurationVar(&opts.ttl, "ttl", time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
