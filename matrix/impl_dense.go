// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - The LU engine (impl_lu.go) works on the flat data slice directly; a row is
//     the contiguous window data[i*c : (i+1)*c].
//   - SwapRows exchanges two windows element by element; no reallocation.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); SwapRows/AddRow: O(c).

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"     // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
	ctxSwap   = "Swap"   // method tag used in error wrappers
	ctxAddRow = "AddRow" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel stays reachable via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return newDenseWithPolicy(rows, cols, DefaultValidateNaNInf)
}

// NewDenseFrom creates an r×c matrix holding a copy of data (row-major).
// MAIN DESCRIPTION:
//   - Convenience constructor for literals in tests, examples and generators.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when data holds a non-finite value (default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	copy(m.data, data)
	if m.validateNaNInf {
		if err = ValidateFinite(m); err != nil {
			return nil, fmt.Errorf("NewDenseFrom: %w", err)
		}
	}

	return m, nil
}

// newDenseWithPolicy is the single allocation point for Dense.
// Used by the reader to carry the caller's numeric policy into the matrix.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills the buffer deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range input.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// SwapRows exchanges rows a and b in place.
// Returns (false, nil) when a == b, (true, nil) after an actual exchange,
// and ErrOutOfRange when either index is invalid.
// Complexity: O(c), no allocations.
func (m *Dense) SwapRows(a, b int) (bool, error) {
	if a < 0 || a >= m.r || b < 0 || b >= m.r {
		return false, denseErrorf(ctxSwap, a, b, ErrOutOfRange)
	}
	if a == b {
		return false, nil
	}
	m.swapRows(a, b)

	return true, nil
}

// AddRow performs row[dst] += c * row[src], the elementary operation that
// leaves the determinant unchanged (dst != src).
// Errors: ErrOutOfRange for bad indices or dst == src; ErrNaNInf for non-finite c
// when the numeric policy is on.
// Complexity: O(c), no allocations.
func (m *Dense) AddRow(dst, src int, c float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r || dst == src {
		return denseErrorf(ctxAddRow, dst, src, ErrOutOfRange)
	}
	if m.validateNaNInf && (math.IsNaN(c) || math.IsInf(c, 0)) {
		return denseErrorf(ctxAddRow, dst, src, ErrNaNInf)
	}
	rd := m.data[dst*m.c : (dst+1)*m.c]
	rs := m.data[src*m.c : (src+1)*m.c]
	for j, v := range rs {
		rd[j] += c * v
	}

	return nil
}

// swapRows is the unchecked kernel behind SwapRows, used by the LU engine.
func (m *Dense) swapRows(a, b int) {
	ra := m.data[a*m.c : (a+1)*m.c]
	rb := m.data[b*m.c : (b+1)*m.c]
	for j := range ra {
		ra[j], rb[j] = rb[j], ra[j]
	}
}

// maxAbs returns the largest absolute finite entry (the engine's pivot scale).
// NaN and ±Inf are skipped so the threshold stays finite.
func (m *Dense) maxAbs() float64 {
	scale := 0.0
	for _, v := range m.data {
		if a := math.Abs(v); a > scale && !math.IsInf(a, 1) {
			scale = a
		}
	}

	return scale
}

// String renders rows as "[a, b, c]\n" lines for diagnostics.
// Values use the shortest round-trip representation.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(m.data[i*m.c+j], 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
