package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdet/internal/logger"
	"github.com/katalvlaran/lvdet/internal/verify"
	"github.com/katalvlaran/lvdet/matrix"
)

func verifyCmd(g *globalFlags) *cobra.Command {
	var (
		input      string
		rtol, atol float64
	)

	c := &cobra.Command{
		Use:   "verify",
		Short: "Compare the engine's determinant with an independent reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rtol") {
				cfg.Verify.RTol = rtol
			}
			if cmd.Flags().Changed("atol") {
				cfg.Verify.ATol = atol
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			cleanup, err := setupLogger(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			r, closeIn, err := openInput(cmd, input)
			if err != nil {
				return err
			}
			defer closeIn()

			m, err := matrix.Read(r, cfg.MatrixOptions()...)
			if err != nil {
				return err
			}
			rep, err := verify.Check(m, verify.Options{
				RTol:   cfg.Verify.RTol,
				ATol:   cfg.Verify.ATol,
				Matrix: cfg.MatrixOptions(),
			})
			logger.L().Info("verify.checked", "n", rep.N, "engine", rep.Engine, "reference", rep.Reference, "ok", rep.OK)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rep)
			return err
		},
	}

	c.Flags().StringVarP(&input, "input", "i", "", "read the matrix from FILE instead of stdin")
	c.Flags().Float64Var(&rtol, "rtol", verify.DefaultRTol, "relative tolerance")
	c.Flags().Float64Var(&atol, "atol", verify.DefaultATol, "absolute tolerance")
	return c
}
