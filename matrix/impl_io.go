// SPDX-License-Identifier: MIT

// Package matrix - text ingestion and serialization.
//
// Purpose:
//   - Read: parse "<n> <n*n values>" (whitespace separated, row-major) into a Dense.
//   - Encode: write a square Matrix in the same format (inverse of Read).
//
// Format:
//
//	<n>
//	<row_0: n values>
//	...
//	<row_{n-1}: n values>
//
// Line breaks are not significant; any run of whitespace separates tokens.
//
// Error order (first failure wins):
//   - missing size token → ErrUnexpectedEOF
//   - size not an integer → ErrMalformedInput
//   - size <= 0 → ErrInvalidDimensions (checked before any allocation)
//   - size > MaxReadSize → ErrTooLarge
//   - value token not a decimal float (hex and "_" forms included) → ErrMalformedInput
//   - NaN/±Inf value with policy on → ErrNaNInf
//   - fewer than n*n values → ErrUnexpectedEOF
//   - any token after the n*n values → ErrTrailingData

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// MaxReadSize bounds the declared dimension accepted by Read (n*n float64s
// at this size already need 8 GiB).
const MaxReadSize = 1 << 15

// Operation tags for I/O error wrapping.
const (
	opRead   = "Read"
	opEncode = "Encode"
)

// Read parses a square matrix from r.
// MAIN DESCRIPTION:
//   - Consume the size token, validate it, allocate once, then fill row-major.
//
// Implementation:
//   - Stage 1: bufio.Scanner in word mode; first token → n via strconv.Atoi.
//   - Stage 2: ValidateSize(n) before allocating n*n values.
//   - Stage 3: parse n*n tokens with strconv.ParseFloat(64) straight into the buffer.
//   - Stage 4: require the stream to be exhausted.
//
// Inputs:
//   - r: text stream; consumed once, in order.
//   - opts: WithValidateNaNInf / WithNoValidateNaNInf govern non-finite values.
//
// Returns:
//   - *Dense: n×n matrix carrying the resolved numeric policy.
//
// Errors:
//   - See the file header; all wrapped as "Read: ...". Token errors carry the
//     1-based token position counted after the size token.
//
// Complexity:
//   - Time O(n^2), Space O(n^2) (single allocation).
func Read(r io.Reader, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)

	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	// Stage 1: size token.
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, matrixErrorf(opRead, err)
		}
		return nil, matrixErrorf(opRead, fmt.Errorf("size: %w", ErrUnexpectedEOF))
	}
	tok := sc.Text()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return nil, matrixErrorf(opRead, fmt.Errorf("size %q: %w", tok, ErrMalformedInput))
	}

	// Stage 2: validate before allocation.
	if err = ValidateSize(n); err != nil {
		return nil, matrixErrorf(opRead, err)
	}
	if n > MaxReadSize {
		return nil, matrixErrorf(opRead, fmt.Errorf("size %d > %d: %w", n, MaxReadSize, ErrTooLarge))
	}
	m, err := newDenseWithPolicy(n, n, o.validateNaNInf)
	if err != nil {
		return nil, matrixErrorf(opRead, err)
	}

	// Stage 3: values.
	var (
		total = n * n
		idx   int
		v     float64
	)
	for idx = 0; idx < total; idx++ {
		if !sc.Scan() {
			if err = sc.Err(); err != nil {
				return nil, matrixErrorf(opRead, err)
			}
			return nil, matrixErrorf(opRead, fmt.Errorf("read %d of %d values: %w", idx, total, ErrUnexpectedEOF))
		}
		tok = sc.Text()
		if !isDecimalToken(tok) {
			return nil, matrixErrorf(opRead, fmt.Errorf("token %d %q: %w", idx+1, tok, ErrMalformedInput))
		}
		if v, err = strconv.ParseFloat(tok, 64); err != nil {
			// ParseFloat returns ±Inf together with ErrRange on overflow; the
			// policy check below handles that value, anything else is syntax.
			var numErr *strconv.NumError
			if !(errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange)) {
				return nil, matrixErrorf(opRead, fmt.Errorf("token %d %q: %w", idx+1, tok, ErrMalformedInput))
			}
		}
		if o.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return nil, matrixErrorf(opRead, fmt.Errorf("token %d %q: %w", idx+1, tok, ErrNaNInf))
		}
		m.data[idx] = v
	}

	// Stage 4: nothing may follow the matrix.
	if sc.Scan() {
		return nil, matrixErrorf(opRead, fmt.Errorf("token %d %q: %w", total+1, sc.Text(), ErrTrailingData))
	}
	if err = sc.Err(); err != nil {
		return nil, matrixErrorf(opRead, err)
	}

	return m, nil
}

// isDecimalToken rejects the Go-only literal forms strconv.ParseFloat would
// accept: digit separators ("1_000") and hexadecimal mantissas ("0x1p4").
func isDecimalToken(tok string) bool {
	if strings.IndexByte(tok, '_') >= 0 {
		return false
	}
	if tok != "" && (tok[0] == '+' || tok[0] == '-') {
		tok = tok[1:]
	}

	return !(len(tok) >= 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X'))
}

// Encode writes m in the format accepted by Read.
// prec >= 0 formats values with strconv 'f' and that many decimals (the
// historical generator used 6); prec < 0 uses the shortest representation that
// round-trips exactly through Read.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation), write errors from w.
func Encode(w io.Writer, m Matrix, prec int) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opEncode, err)
	}
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opEncode, err)
	}

	n := m.Rows()
	bw := bufio.NewWriter(w)
	format, digits := byte('f'), prec
	if prec < 0 {
		format, digits = 'g', -1
	}

	var (
		buf  []byte
		i, j int
		v    float64
		err  error
	)
	buf = strconv.AppendInt(buf, int64(n), 10)
	buf = append(buf, '\n')
	d, fast := m.(*Dense)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if fast {
				v = d.data[i*n+j]
			} else if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opEncode, err)
			}
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, format, digits, 64)
		}
		buf = append(buf, '\n')
		if _, err = bw.Write(buf); err != nil {
			return matrixErrorf(opEncode, err)
		}
		buf = buf[:0]
	}
	if err = bw.Flush(); err != nil {
		return matrixErrorf(opEncode, err)
	}

	return nil
}
