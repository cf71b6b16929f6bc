// SPDX-License-Identifier: MIT
// Package matrix provides the in-place LU factorization with partial pivoting
// and the determinant derived from it.
//
// Purpose:
//   - Reduce a square Dense to packed L\U form (unit-lower multipliers below the
//     diagonal, U on and above it) in the caller's buffer, no second copy.
//   - Track the row permutation and its sign for the determinant.
//   - Stop early on a numerically zero pivot column: det = 0 is a result, not an error.
//
// Notes:
//   - Kernels return sentinels wrapped via matrixErrorf with the op tag.
//   - Loop orders are fixed; ties in pivot selection go to the lowest row index,
//     so identical inputs always produce identical factors.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFactorize  = "Factorize"
	opDet        = "Det"
	opDetInPlace = "DetInPlace"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LU holds the result of Factorize: the packed factors, the row permutation and
// its sign, and whether elimination stopped on a zero pivot.
//
// The packed buffer is the matrix handed to Factorize; LU owns it from then on.
type LU struct {
	lu        *Dense  // packed L\U, row-major n×n
	perm      []int   // perm[k] = original row index now at position k
	sign      int     // +1 / -1, parity of row exchanges
	singular  bool    // true when a pivot column was numerically zero
	step      int     // column where elimination stopped (n when complete)
	scale     float64 // max |a_ij| over the finite entries of the input
	threshold float64 // absolute zero-pivot threshold = pivotTol * scale
}

// Factorize reduces m in place using Gaussian elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Consumes m: after the call m's buffer holds the packed factors and must
//     only be observed through the returned *LU.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); resolve options; scale = max|a_ij|
//     over finite entries; threshold = pivotTol * scale.
//   - Stage 2: for k = 0..n-1:
//     a) pivot = argmax_{i≥k} |a[i][k]| (strict >, lowest index wins ties);
//     b) |pivot| <= threshold ⇒ mark singular at step k and stop;
//     c) swap rows k and pivot when they differ, flip sign, record in perm;
//     d) for i > k: m_ik = a[i][k]/a[k][k] stored at a[i][k]; row_i -= m_ik·row_k
//     over columns k+1..n-1.
//
// Behavior highlights:
//   - n == 1 runs the pivot test only; no elimination.
//   - A zero matrix has scale 0 and is singular at step 0.
//   - NaN/±Inf entries (only reachable with WithNoValidateNaNInf) do not enter
//     the scale; an Inf pivot passes the test and the product follows IEEE rules.
//   - Rows whose multiplier is exactly 0 are skipped, so an already
//     upper-triangular input is left bit-for-bit unchanged.
//
// Inputs:
//   - m: non-nil square *Dense with n ≥ 1.
//   - opts: WithPivotTolerance.
//
// Returns:
//   - *LU with Singular()==true for numerically singular input (not an error).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions (wrapped with "Factorize").
//
// Complexity:
//   - Time O(n^3) (≈ 2n^3/3 flops), Space O(n) beyond the input buffer.
func Factorize(m *Dense, opts ...Option) (*LU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}
	o := gatherOptions(opts...)

	n := m.r
	f := &LU{
		lu:    m,
		perm:  make([]int, n),
		sign:  1,
		step:  n,
		scale: m.maxAbs(),
	}
	f.threshold = o.pivotTol * f.scale
	for i := range f.perm {
		f.perm[i] = i
	}

	var (
		data       = m.data
		i, k, p    int
		best, a    float64
		pivot, mul float64
		base       int
		rowK, rowI []float64
	)
	for k = 0; k < n; k++ {
		// a) pivot selection in column k.
		p = k
		best = math.Abs(data[k*n+k])
		for i = k + 1; i < n; i++ {
			if a = math.Abs(data[i*n+k]); a > best {
				p, best = i, a
			}
		}

		// b) numerically zero column ⇒ det = 0.
		if best <= f.threshold {
			f.singular = true
			f.step = k

			return f, nil
		}

		// c) row exchange.
		if p != k {
			m.swapRows(k, p)
			f.perm[k], f.perm[p] = f.perm[p], f.perm[k]
			f.sign = -f.sign
		}

		// d) elimination below the pivot.
		pivot = data[k*n+k]
		rowK = data[k*n+k+1 : (k+1)*n]
		for i = k + 1; i < n; i++ {
			base = i * n
			mul = data[base+k] / pivot
			data[base+k] = mul
			if mul == 0 {
				continue
			}
			rowI = data[base+k+1 : base+n]
			for j, v := range rowK {
				rowI[j] -= mul * v
			}
		}
	}

	return f, nil
}

// Det returns sign · Π diag(U), or 0 when the factorization stopped on a zero pivot.
// Complexity: O(n).
func (f *LU) Det() float64 {
	if f.singular {
		return 0
	}
	n := f.lu.r
	det := float64(f.sign)
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det
}

// LogDet returns log|det| and the sign of det. For a singular factorization it
// returns (-Inf, 0). Use it when Det would overflow or underflow (large n with
// diagonal magnitudes far from 1).
// Complexity: O(n).
func (f *LU) LogDet() (logAbs float64, sign int) {
	if f.singular {
		return math.Inf(-1), 0
	}
	n := f.lu.r
	sign = f.sign
	var d float64
	for i := 0; i < n; i++ {
		d = f.lu.data[i*n+i]
		if d < 0 {
			sign = -sign
		}
		logAbs += math.Log(math.Abs(d))
	}

	return logAbs, sign
}

// N returns the dimension of the factorized matrix.
func (f *LU) N() int { return f.lu.r }

// Sign returns the permutation sign (+1 or -1) accumulated so far.
func (f *LU) Sign() int { return f.sign }

// Singular reports whether elimination stopped on a numerically zero pivot.
func (f *LU) Singular() bool { return f.singular }

// Step returns the column where elimination stopped; N() when it completed.
func (f *LU) Step() int { return f.step }

// Scale returns max |a_ij| over the finite entries of the input matrix.
func (f *LU) Scale() float64 { return f.scale }

// Threshold returns the absolute zero-pivot threshold used by Factorize.
func (f *LU) Threshold() float64 { return f.threshold }

// Perm returns a copy of the row permutation: row k of P·A is row Perm()[k] of A.
func (f *LU) Perm() []int {
	out := make([]int, len(f.perm))
	copy(out, f.perm)

	return out
}

// U returns a fresh copy of the upper-triangular factor (zeros below the diagonal).
// For a singular factorization, rows ≥ Step() hold the partially reduced block.
func (f *LU) U() *Dense {
	n := f.lu.r
	u, _ := newDenseWithPolicy(n, n, false) // n ≥ 1 was validated by Factorize
	var i int
	for i = 0; i < n; i++ {
		copy(u.data[i*n+i:(i+1)*n], f.lu.data[i*n+i:(i+1)*n])
	}
	u.validateNaNInf = f.lu.validateNaNInf

	return u
}

// L returns a fresh copy of the unit lower-triangular factor.
// Columns ≥ Step() are identity columns for a singular factorization.
func (f *LU) L() *Dense {
	n := f.lu.r
	l, _ := newDenseWithPolicy(n, n, false)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < i && j < f.step; j++ {
			l.data[i*n+j] = f.lu.data[i*n+j]
		}
		l.data[i*n+i] = 1.0
	}
	l.validateNaNInf = f.lu.validateNaNInf

	return l
}

// FactorizeCopy factorizes a copy of m, leaving m untouched.
// MAIN DESCRIPTION:
//   - Non-destructive entry point: copy m into a fresh Dense, then Factorize the copy.
//   - Accepts any Matrix; *Dense inputs are cloned in one copy, others go through At.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrInvalidDimensions; At errors for custom Matrix types.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the working copy.
func FactorizeCopy(m Matrix, opts ...Option) (*LU, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opFactorize, err)
	}

	var work *Dense
	if d, ok := m.(*Dense); ok {
		work = d.Clone().(*Dense)
	} else {
		n := m.Rows()
		var err error
		if work, err = newDenseWithPolicy(n, n, false); err != nil {
			return nil, matrixErrorf(opFactorize, err)
		}
		var (
			i, j int
			v    float64
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if v, err = m.At(i, j); err != nil {
					return nil, matrixErrorf(opFactorize, err)
				}
				work.data[i*n+j] = v
			}
		}
	}

	return Factorize(work, opts...)
}

// Det computes the determinant of m without modifying it.
// Errors are those of FactorizeCopy, wrapped with "Det".
//
// AI-Hints:
//   - When the input is no longer needed, DetInPlace avoids the O(n^2) copy.
func Det(m Matrix, opts ...Option) (float64, error) {
	f, err := FactorizeCopy(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	return f.Det(), nil
}

// DetInPlace computes the determinant by factorizing m itself.
// m is consumed: its contents are the packed factors afterwards.
// Complexity: Time O(n^3), Space O(n).
func DetInPlace(m *Dense, opts ...Option) (float64, error) {
	f, err := Factorize(m, opts...)
	if err != nil {
		return 0, matrixErrorf(opDetInPlace, err)
	}

	return f.Det(), nil
}
