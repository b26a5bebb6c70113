// Package cli implements the emissionctl operator command line: schema
// migrations, factor lookups, ad-hoc calculations and token issuing.
package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/greencampus/emission-engine/internal/domain"
	"github.com/greencampus/emission-engine/internal/service/emission"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// engineService is the slice of the calculation engine the CLI drives.
type engineService interface {
	Calculate(ctx context.Context, input emission.CalculateInput) (*emission.Result, error)
	ResolveFactor(ctx context.Context, input emission.ResolveFactorInput) (*domain.ResolvedFactor, error)
}

// engineOpener connects to storage and returns the engine plus a release func.
type engineOpener func(ctx context.Context) (engineService, func(), error)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string

	openEngine engineOpener
}

// NewRootCommand creates the emissionctl root command backed by the
// configured database.
func NewRootCommand() *cobra.Command {
	return newRootCommand(openEngine)
}

func newRootCommand(open engineOpener) *cobra.Command {
	opts := &RootOptions{openEngine: open}

	cmd := &cobra.Command{
		Use:   "emissionctl",
		Short: "Operate the emission calculation engine",
		Long: `emissionctl applies database migrations, inspects the factor catalog and
submits calculations directly against the engine, bypassing HTTP.

Configuration is read the same way as the server: CONFIG_PATH or
./config.yaml, overridden by environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(newMigrateCommand(opts))
	cmd.AddCommand(newResolveCommand(opts))
	cmd.AddCommand(newCalculateCommand(opts))
	cmd.AddCommand(newTokenCommand(opts))

	return cmd
}
