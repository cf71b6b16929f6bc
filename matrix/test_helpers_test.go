// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (literals, seeded random fills) for the LU engine.
//   • Provide the elementary transforms used by determinant property tests
//     (transpose, row swap, row scale) without widening the public API.
//   • Provide a trusted reference determinant (gonum mat.Det).

package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvdet/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the non-*Dense (At-based) paths in Det and Encode.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS an r×c *Dense from row-major vals or fails the test.
func NewFilledDense(t testing.TB, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandFilledDense RETURNS a new n×n Dense filled with deterministic U(-1,1).
// Determinism: identical seeds produce identical matrices.
func RandFilledDense(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, n, n)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}

	return m
}

// UpperTriangular RETURNS an n×n upper-triangular matrix with entries in
// [lo,hi) and the exact product of its diagonal.
func UpperTriangular(t testing.TB, n int, lo, hi float64, seed int64) (*matrix.Dense, float64) {
	t.Helper()
	m := MustDense(t, n, n)
	rng := rand.New(rand.NewSource(seed))
	prod := 1.0
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			MustSet(t, m, i, j, lo+rng.Float64()*(hi-lo))
		}
		prod *= MustAt(t, m, i, i)
	}

	return m, prod
}

// Transposed RETURNS mᵀ as a fresh Dense.
func Transposed(t testing.TB, m matrix.Matrix) *matrix.Dense {
	t.Helper()
	out := MustDense(t, m.Cols(), m.Rows())
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, out, j, i, MustAt(t, m, i, j))
		}
	}

	return out
}

// WithRowsSwapped RETURNS a copy of m with rows a and b exchanged.
func WithRowsSwapped(t testing.TB, m *matrix.Dense, a, b int) *matrix.Dense {
	t.Helper()
	out := m.Clone().(*matrix.Dense)
	if _, err := out.SwapRows(a, b); err != nil {
		t.Fatalf("SwapRows(%d,%d): %v", a, b, err)
	}

	return out
}

// WithRowScaled RETURNS a copy of m with row i multiplied by c.
func WithRowScaled(t testing.TB, m *matrix.Dense, i int, c float64) *matrix.Dense {
	t.Helper()
	out := m.Clone().(*matrix.Dense)
	for j := 0; j < m.Cols(); j++ {
		MustSet(t, out, i, j, c*MustAt(t, out, i, j))
	}

	return out
}

// MulDense RETURNS a·b (naive i→k→j loop; test-only).
func MulDense(t testing.TB, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	if a.Cols() != b.Rows() {
		t.Fatalf("MulDense: %dx%d · %dx%d", a.Rows(), a.Cols(), b.Rows(), b.Cols())
	}
	out := MustDense(t, a.Rows(), b.Cols())
	var (
		i, k, j int
		aik, s  float64
	)
	for i = 0; i < a.Rows(); i++ {
		for k = 0; k < a.Cols(); k++ {
			aik = MustAt(t, a, i, k)
			for j = 0; j < b.Cols(); j++ {
				s = MustAt(t, out, i, j)
				MustSet(t, out, i, j, s+aik*MustAt(t, b, k, j))
			}
		}
	}

	return out
}

// PermuteRows RETURNS P·m where row k of the result is row perm[k] of m.
func PermuteRows(t testing.TB, m matrix.Matrix, perm []int) *matrix.Dense {
	t.Helper()
	out := MustDense(t, m.Rows(), m.Cols())
	var k, j int
	for k = 0; k < len(perm); k++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, out, k, j, MustAt(t, m, perm[k], j))
		}
	}

	return out
}

// ReferenceDet COMPUTES det(m) with gonum (LAPACK-style partial-pivot LU).
func ReferenceDet(t testing.TB, m matrix.Matrix) float64 {
	t.Helper()
	n := m.Rows()
	data := make([]float64, 0, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			data = append(data, MustAt(t, m, i, j))
		}
	}

	return mat.Det(mat.NewDense(n, n, data))
}

// RelClose CHECKS |got-want| ≤ atol + rtol*|want| (numpy.isclose policy).
func RelClose(got, want, rtol, atol float64) bool {
	return math.Abs(got-want) <= atol+rtol*math.Abs(want)
}

// PermParity RETURNS +1 for an even permutation, -1 for an odd one.
func PermParity(perm []int) int {
	seen := make([]bool, len(perm))
	sign := 1
	for i := range perm {
		if seen[i] {
			continue
		}
		cycle := 0
		for j := i; !seen[j]; j = perm[j] {
			seen[j] = true
			cycle++
		}
		if cycle%2 == 0 {
			sign = -sign
		}
	}

	return sign
}

// AssertErrorIs WRAPS errors.Is with consistent failure text.
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	fn()
}
