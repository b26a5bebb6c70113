package cli

import (
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/greencampus/emission-engine/internal/adapter/postgres"
	"github.com/greencampus/emission-engine/internal/config"
)

type migrationRow struct {
	Version   int64      `json:"version"`
	Path      string     `json:"path"`
	State     string     `json:"state"`
	AppliedAt *time.Time `json:"appliedAt,omitempty"`
	Duration  string     `json:"duration,omitempty"`
}

func newMigrateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect the embedded schema migrations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(p *goose.Provider) error {
				results, err := p.Up(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate up: %w", err)
				}

				rows := make([]migrationRow, 0, len(results))
				for _, r := range results {
					rows = append(rows, migrationRow{
						Version:  r.Source.Version,
						Path:     r.Source.Path,
						State:    "applied",
						Duration: r.Duration.String(),
					})
				}
				return printMigrations(opts, cmd, rows)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show applied and pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withMigrator(cmd, func(p *goose.Provider) error {
				statuses, err := p.Status(cmd.Context())
				if err != nil {
					return fmt.Errorf("migrate status: %w", err)
				}

				rows := make([]migrationRow, 0, len(statuses))
				for _, s := range statuses {
					row := migrationRow{
						Version: s.Source.Version,
						Path:    s.Source.Path,
						State:   string(s.State),
					}
					if !s.AppliedAt.IsZero() {
						at := s.AppliedAt
						row.AppliedAt = &at
					}
					rows = append(rows, row)
				}
				return printMigrations(opts, cmd, rows)
			})
		},
	})

	return cmd
}

func withMigrator(cmd *cobra.Command, fn func(*goose.Provider) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	provider, db, err := postgres.NewMigrator(cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.PingContext(cmd.Context()); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return fn(provider)
}

func printMigrations(opts *RootOptions, cmd *cobra.Command, rows []migrationRow) error {
	p := newPrinter(opts, cmd.OutOrStdout())
	if p.format == "json" {
		return p.print(rows, nil)
	}
	if len(rows) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "no migrations to apply")
		return err
	}

	fields := make([]field, 0, len(rows))
	for _, r := range rows {
		value := r.State
		if r.AppliedAt != nil {
			value += " " + r.AppliedAt.UTC().Format(time.RFC3339)
		}
		if r.Duration != "" {
			value += " (" + r.Duration + ")"
		}
		fields = append(fields, field{key: fmt.Sprintf("%05d %s", r.Version, r.Path), value: value})
	}
	return p.print(rows, fields)
}
