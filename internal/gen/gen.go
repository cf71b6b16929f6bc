// Package gen builds test matrices with a known determinant.
//
// A matrix starts upper triangular (det = product of the diagonal) and is then
// mixed with ⌊n^1.5⌋ random row additions row[b] += c·row[a] (a < b, c ∈ [0,1)),
// which leave the determinant unchanged in exact arithmetic. Element ranges are
// kept close to 1 so the product neither overflows nor underflows at n = 1000.
package gen

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvdet/matrix"
)

// Element range used for the triangular seed matrix.
const (
	DefaultMinElem = 0.9
	DefaultMaxElem = 1.15
)

// ErrInvalidRange is returned when lo > hi or either bound is not finite.
var ErrInvalidRange = errors.New("gen: invalid element range")

// Spec describes one generated matrix.
type Spec struct {
	Size    int
	Seed    int64
	MinElem float64
	MaxElem float64
	// CustomRange selects [MinElem, MaxElem); otherwise the default range is used.
	CustomRange bool
	NoMix       bool // keep the matrix upper triangular
}

// Result is a generated matrix together with its determinant by construction.
type Result struct {
	Matrix *matrix.Dense
	Det    float64 // product of the triangular diagonal
	Mixes  int     // number of row additions applied
}

// UpperTriangular returns an n×n matrix whose entries on and above the
// diagonal are uniform in [lo, hi), and the product of its diagonal.
func UpperTriangular(n int, rng *rand.Rand, lo, hi float64) (*matrix.Dense, float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return nil, 0, fmt.Errorf("[%g, %g]: %w", lo, hi, ErrInvalidRange)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, 0, err
	}

	det := 1.0
	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			v = lo + rng.Float64()*(hi-lo)
			if err = m.Set(i, j, v); err != nil {
				return nil, 0, err
			}
			if i == j {
				det *= v
			}
		}
	}

	return m, det, nil
}

// MixRows applies ⌊n^1.5⌋ determinant-preserving row additions to m and
// returns how many were applied. A 1×1 matrix is left untouched.
func MixRows(m *matrix.Dense, rng *rand.Rand) (int, error) {
	n := m.Rows()
	if n == 1 {
		return 0, nil
	}

	iters := int(math.Pow(float64(n), 1.5))
	var a, b, k int
	for k = 0; k < iters; k++ {
		a = rng.Intn(n)
		b = a
		for b == a {
			b = rng.Intn(n)
		}
		// the lower row receives the upper one, breaking the triangular shape
		if b < a {
			a, b = b, a
		}
		if err := m.AddRow(b, a, rng.Float64()); err != nil {
			return k, err
		}
	}

	return iters, nil
}

// Generate builds the matrix described by s. Without CustomRange the entries
// come from [DefaultMinElem, DefaultMaxElem).
func Generate(s Spec) (Result, error) {
	lo, hi := DefaultMinElem, DefaultMaxElem
	if s.CustomRange {
		lo, hi = s.MinElem, s.MaxElem
	}
	rng := rand.New(rand.NewSource(s.Seed))

	m, det, err := UpperTriangular(s.Size, rng, lo, hi)
	if err != nil {
		return Result{}, fmt.Errorf("gen: %w", err)
	}
	res := Result{Matrix: m, Det: det}
	if s.NoMix {
		return res, nil
	}
	if res.Mixes, err = MixRows(m, rng); err != nil {
		return Result{}, fmt.Errorf("gen: %w", err)
	}

	return res, nil
}
