package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdet/internal/driver"
	"github.com/katalvlaran/lvdet/internal/gen"
	"github.com/katalvlaran/lvdet/internal/logger"
	"github.com/katalvlaran/lvdet/matrix"
)

func genCmd(g *globalFlags) *cobra.Command {
	var (
		spec      gen.Spec
		answer    string
		precision int
	)

	c := &cobra.Command{
		Use:   "gen",
		Short: "Write a random test matrix with a known determinant",
		Long: "Builds an upper-triangular matrix, mixes it with determinant-preserving\n" +
			"row additions and writes it in the driver's input format.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			cleanup, err := setupLogger(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			spec.CustomRange = cmd.Flags().Changed("min") || cmd.Flags().Changed("max")
			res, err := gen.Generate(spec)
			if err != nil {
				return err
			}
			logger.L().Info("gen.generated", "n", spec.Size, "seed", spec.Seed, "mixes", res.Mixes, "det", res.Det)

			if err = matrix.Encode(cmd.OutOrStdout(), res.Matrix, precision); err != nil {
				return err
			}
			if answer != "" {
				line := driver.Format(res.Det, driver.DefaultPrecision) + "\n"
				if err = os.WriteFile(answer, []byte(line), 0o644); err != nil {
					return fmt.Errorf("answer: %w", err)
				}
			}
			return nil
		},
	}

	c.Flags().IntVarP(&spec.Size, "size", "n", 0, "matrix dimension (required)")
	c.Flags().Int64Var(&spec.Seed, "seed", 1, "random seed")
	c.Flags().Float64Var(&spec.MinElem, "min", gen.DefaultMinElem, "lower bound of the triangular entries")
	c.Flags().Float64Var(&spec.MaxElem, "max", gen.DefaultMaxElem, "upper bound of the triangular entries")
	c.Flags().BoolVar(&spec.NoMix, "no-mix", false, "keep the matrix upper triangular")
	c.Flags().StringVar(&answer, "answer", "", "also write the determinant by construction to FILE")
	c.Flags().IntVar(&precision, "precision", -1, "decimals per value (-1 = shortest exact, 6 = legacy harness)")

	_ = c.MarkFlagRequired("size")
	return c
}
