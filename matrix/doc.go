// SPDX-License-Identifier: MIT

// Package matrix computes determinants of dense real matrices.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors.
//   - Read and Encode for the text format "<n> <n*n values>".
//   - Factorize, an in-place LU factorization with partial pivoting that
//     records the row permutation and its sign.
//   - Det / DetInPlace / ReadDet, determinant facades on top of Factorize.
//
// A pivot column whose largest magnitude is at most
// PivotTolerance · max|a_ij| is numerically zero; the determinant is then 0
// and no error is returned. Invalid sizes and malformed input are reported
// through the sentinels in errors.go.
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
//	det, _ := matrix.Det(m) // -2
package matrix
