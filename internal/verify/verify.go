// Package verify checks the engine's determinant against an independent
// reference computed by gonum.
package verify

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvdet/matrix"
)

// Default comparison tolerances.
const (
	DefaultRTol = 1e-5
	DefaultATol = 0.0
)

// ErrMismatch is returned by Check when the two determinants disagree.
var ErrMismatch = errors.New("verify: determinant mismatch")

// Options sets the comparison tolerances used by Check.
type Options struct {
	RTol float64
	ATol float64
	// Matrix options used for the engine side of the comparison.
	Matrix []matrix.Option
}

// DefaultOptions returns DefaultRTol and DefaultATol with default engine options.
func DefaultOptions() Options {
	return Options{RTol: DefaultRTol, ATol: DefaultATol}
}

// Report is the outcome of one comparison.
type Report struct {
	N         int
	Engine    float64
	Reference float64
	AbsErr    float64
	RelErr    float64 // AbsErr / |Reference|; equals AbsErr when Reference is 0
	Singular  bool    // the engine stopped on a numerically zero pivot
	Tolerance float64 // for a singular engine result: largest |Reference| accepted
	OK        bool
}

func (r Report) String() string {
	status := "ok"
	if !r.OK {
		status = "MISMATCH"
	}
	if r.Singular {
		return fmt.Sprintf("n=%d engine=%g (singular, tol=%.3g) reference=%g abs_err=%.3g %s",
			r.N, r.Engine, r.Tolerance, r.Reference, r.AbsErr, status)
	}
	return fmt.Sprintf("n=%d engine=%g reference=%g abs_err=%.3g rel_err=%.3g %s",
		r.N, r.Engine, r.Reference, r.AbsErr, r.RelErr, status)
}

// Reference computes det(m) with gonum's LU.
func Reference(m matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquareNonNil(m); err != nil {
		return 0, fmt.Errorf("verify: %w", err)
	}
	n := m.Rows()
	data := make([]float64, n*n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if data[i*n+j], err = m.At(i, j); err != nil {
				return 0, fmt.Errorf("verify: %w", err)
			}
		}
	}

	return mat.Det(mat.NewDense(n, n, data)), nil
}

// Close reports |got-want| <= atol + rtol*|want|. NaN never compares close;
// equal infinities do.
func Close(got, want, rtol, atol float64) bool {
	if math.IsNaN(got) || math.IsNaN(want) {
		return false
	}
	if got == want {
		return true
	}
	return math.Abs(got-want) <= atol+rtol*math.Abs(want)
}

// Check computes det(m) with the engine (m is not modified) and with the
// reference and compares them. When the engine reports a singular matrix the
// reference only has to be within Threshold()·n of zero, since rounding leaves
// a residue of that order in any LU of a rank-deficient matrix. A mismatch
// returns the report together with ErrMismatch.
func Check(m matrix.Matrix, opts Options) (Report, error) {
	f, err := matrix.FactorizeCopy(m, opts.Matrix...)
	if err != nil {
		return Report{}, fmt.Errorf("verify: %w", err)
	}
	want, err := Reference(m)
	if err != nil {
		return Report{}, err
	}

	got := f.Det()
	r := Report{
		N:         f.N(),
		Engine:    got,
		Reference: want,
		AbsErr:    math.Abs(got - want),
		Singular:  f.Singular(),
	}
	if r.Singular {
		r.Tolerance = f.Threshold() * float64(f.N())
		r.OK = math.Abs(want) <= r.Tolerance || Close(got, want, opts.RTol, opts.ATol)
	} else {
		r.OK = Close(got, want, opts.RTol, opts.ATol)
	}
	r.RelErr = r.AbsErr
	if want != 0 {
		r.RelErr = r.AbsErr / math.Abs(want)
	}
	if !r.OK {
		return r, fmt.Errorf("%s: %w", r, ErrMismatch)
	}
	return r, nil
}
