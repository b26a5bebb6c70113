package cli

import (
	"github.com/spf13/cobra"

	"github.com/greencampus/emission-engine/internal/domain"
	"github.com/greencampus/emission-engine/internal/service/emission"
)

type resolveOptions struct {
	category string
	country  string
	period   string
}

type factorOutput struct {
	Category  string  `json:"category"`
	Country   *string `json:"country"`
	National  bool    `json:"national"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Hash      string  `json:"hash"`
	VersionID int64   `json:"versionId"`
	ValidFrom string  `json:"validFrom"`
	ValidTo   *string `json:"validTo"`
}

func newResolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &resolveOptions{}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the factor that applies to a category, country and period",
		Long: `Resolve selects the factor the engine would apply: a country-specific
factor beats the national default, and the most recent publication wins
within the same scope.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, release, err := rootOpts.openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			f, err := svc.ResolveFactor(cmd.Context(), emission.ResolveFactorInput{
				Category:    opts.category,
				CountryCode: opts.country,
				Period:      opts.period,
			})
			if err != nil {
				return err
			}

			out := factorOutput{
				Category:  f.Category,
				Country:   f.Country,
				National:  f.IsNational(),
				Value:     f.Value,
				Unit:      f.Unit,
				Hash:      f.Hash,
				VersionID: f.VersionID,
				ValidFrom: f.ValidFrom.Format(domain.DateLayout),
			}
			validTo := "open"
			if f.ValidTo != nil {
				validTo = f.ValidTo.Format(domain.DateLayout)
				out.ValidTo = &validTo
			}
			scope := "national"
			if f.Country != nil {
				scope = *f.Country
			}

			return newPrinter(rootOpts, cmd.OutOrStdout()).print(out, []field{
				{"category", out.Category},
				{"scope", scope},
				{"value", out.Value},
				{"unit", out.Unit},
				{"hash", out.Hash},
				{"valid", out.ValidFrom + " .. " + validTo},
			})
		},
	}

	cmd.Flags().StringVar(&opts.category, "category", string(domain.KindElectricity), "factor category")
	cmd.Flags().StringVar(&opts.country, "country", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&opts.period, "period", "", "reporting period (YYYY-MM)")
	_ = cmd.MarkFlagRequired("country")
	_ = cmd.MarkFlagRequired("period")

	return cmd
}
