package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/greencampus/emission-engine/internal/domain"
	"github.com/greencampus/emission-engine/internal/service/emission"
	"github.com/greencampus/emission-engine/pkg/ctxutil"
)

type calculateOptions struct {
	user     string
	quantity float64
	country  string
	period   string
	key      string
	mode     string
}

type calculationOutput struct {
	CalcID     string  `json:"calcId"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	KgCO2e     float64 `json:"kgCO2e"`
	FactorHash string  `json:"factorHash"`
	Replayed   bool    `json:"replayed"`
}

func newCalculateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate <electricity|transport>",
		Short: "Submit a calculation on behalf of a user",
		Long: `Calculate runs the same idempotent pipeline as the HTTP API. Repeating the
command with the same user, kind and --key returns the stored result
instead of creating a new one.

--quantity is kWh for electricity and km for transport.`,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(domain.KindElectricity), string(domain.KindTransport)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := domain.CalculationKind(args[0])

			userID, err := uuid.Parse(opts.user)
			if err != nil || userID == uuid.Nil {
				return errors.New("--user must be a non-nil UUID")
			}
			if opts.mode != "" && kind != domain.KindTransport {
				return errors.New("--mode only applies to transport")
			}

			svc, release, err := rootOpts.openEngine(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			ctx := ctxutil.WithUserID(cmd.Context(), userID)
			result, err := svc.Calculate(ctx, emission.CalculateInput{
				Kind:           kind,
				Quantity:       opts.quantity,
				CountryCode:    opts.country,
				Period:         opts.period,
				IdempotencyKey: opts.key,
				Mode:           opts.mode,
			})
			if err != nil {
				return err
			}

			out := calculationOutput{
				CalcID:     result.CalcID.String(),
				Quantity:   opts.quantity,
				Unit:       kind.QuantityUnit(),
				KgCO2e:     result.KgCO2e,
				FactorHash: result.FactorHash,
				Replayed:   result.Replayed,
			}
			return newPrinter(rootOpts, cmd.OutOrStdout()).print(out, []field{
				{"calcId", out.CalcID},
				{"quantity", fmt.Sprintf("%g %s", out.Quantity, out.Unit)},
				{"kgCO2e", out.KgCO2e},
				{"factorHash", out.FactorHash},
				{"replayed", out.Replayed},
			})
		},
	}

	cmd.Flags().StringVar(&opts.user, "user", "", "submitting user ID")
	cmd.Flags().Float64Var(&opts.quantity, "quantity", 0, "activity quantity (kWh or km)")
	cmd.Flags().StringVar(&opts.country, "country", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&opts.period, "period", "", "reporting period (YYYY-MM)")
	cmd.Flags().StringVar(&opts.key, "key", "", "idempotency key")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "transport mode (transport only)")
	for _, name := range []string{"user", "quantity", "country", "period", "key"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}
