// Package cli wires the cobra command tree: the root command computes a
// determinant, gen and verify drive the test harness.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdet/internal/driver"
	"github.com/katalvlaran/lvdet/internal/logger"
)

// exitError carries a non-zero exit code whose diagnostic was already written.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit status %d", e.code) }

// Execute runs the command line of the current process and returns its exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the command tree with explicit streams. Any failure produces
// exactly one line on errOut and a non-zero code.
func Run(args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		driver.Report(errOut, err)
		return driver.ExitInvalidInput
	}
	return driver.ExitOK
}

func newRootCmd() *cobra.Command {
	var (
		g         globalFlags
		input     string
		precision int
		pivotTol  float64
		nonFinite bool
	)

	cmd := &cobra.Command{
		Use:   "driver",
		Short: "Compute the determinant of a square matrix read from stdin",
		Long: "Reads \"<n> <n*n values>\" (whitespace separated, row-major) and prints\n" +
			"the determinant on a single line. Errors go to stderr with exit status 1.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("precision") {
				cfg.Output.Precision = precision
			}
			if cmd.Flags().Changed("pivot-tol") {
				cfg.Engine.PivotTolerance = pivotTol
			}
			if cmd.Flags().Changed("allow-nonfinite") {
				cfg.Engine.ValidateFinite = !nonFinite
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

			code := driver.Run(r, cmd.OutOrStdout(), cmd.ErrOrStderr(), driver.Options{
				Precision: cfg.Output.Precision,
				Matrix:    cfg.MatrixOptions(),
				Logger:    logger.L(),
			})
			if code != driver.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}

	g.register(cmd)
	cmd.Flags().StringVarP(&input, "input", "i", "", "read the matrix from FILE instead of stdin (\"-\" is stdin)")
	cmd.Flags().IntVar(&precision, "precision", driver.DefaultPrecision, "significant digits of the result (-1 = shortest exact)")
	cmd.Flags().Float64Var(&pivotTol, "pivot-tol", 0, "relative zero-pivot tolerance (default from config, 1e-12)")
	cmd.Flags().BoolVar(&nonFinite, "allow-nonfinite", false, "accept NaN and Inf values in the input")

	cmd.AddCommand(genCmd(&g), verifyCmd(&g))
	return cmd
}
