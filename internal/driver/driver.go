// Package driver runs one determinant computation end to end: read a matrix,
// factorize it, print the determinant. It owns the output contract: one line
// on stdout on success, one diagnostic line on stderr on failure.
package driver

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdet/matrix"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitInvalidInput = 1
)

// DefaultPrecision selects the shortest representation that round-trips.
const DefaultPrecision = -1

// Options configures one Run: output precision, engine options and the stage logger.
type Options struct {
	// Precision is passed to strconv.FormatFloat with format 'g'.
	Precision int
	// Matrix options apply to both reading and factorization.
	Matrix []matrix.Option
	// Logger receives stage events at debug level. Nil discards them.
	Logger *slog.Logger
}

// DefaultOptions returns Options with DefaultPrecision and no logger.
func DefaultOptions() Options {
	return Options{Precision: DefaultPrecision}
}

// Format renders det the way Run prints it (without the newline).
func Format(det float64, precision int) string {
	return strconv.FormatFloat(det, 'g', precision, 64)
}

// Run reads a matrix from in, writes its determinant to out and returns the
// process exit code. On failure nothing is written to out and exactly one
// line is written to errOut.
func Run(in io.Reader, out, errOut io.Writer, opts Options) int {
	det, err := Compute(in, opts)
	if err == nil {
		err = emit(out, det, opts)
	}
	if err != nil {
		Report(errOut, err)
		return ExitInvalidInput
	}
	return ExitOK
}

// Compute reads one matrix from in and returns its determinant, logging each
// stage through opts.Logger.
func Compute(in io.Reader, opts Options) (float64, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	m, err := matrix.Read(in, opts.Matrix...)
	if err != nil {
		log.Debug("driver.read", "err", err)
		return 0, fmt.Errorf("driver: %w", err)
	}
	log.Debug("driver.read", "n", m.Rows())

	f, err := matrix.Factorize(m, opts.Matrix...)
	if err != nil {
		log.Debug("driver.factorize", "err", err)
		return 0, fmt.Errorf("driver: %w", err)
	}
	det := f.Det()
	log.Debug("driver.factorize",
		"n", f.N(),
		"sign", f.Sign(),
		"singular", f.Singular(),
		"step", f.Step(),
		"threshold", f.Threshold(),
	)

	return det, nil
}

func emit(out io.Writer, det float64, opts Options) error {
	line := Format(det, opts.Precision) + "\n"
	if _, err := io.WriteString(out, line); err != nil {
		return fmt.Errorf("driver: write result: %w", err)
	}
	if opts.Logger != nil {
		opts.Logger.Debug("driver.emit", "det", det)
	}
	return nil
}

// Report writes err to errOut as a single line; embedded newlines are folded.
func Report(errOut io.Writer, err error) {
	msg := strings.ReplaceAll(strings.TrimSpace(err.Error()), "\n", "; ")
	_, _ = fmt.Fprintln(errOut, msg)
}
