// SPDX-License-Identifier: MIT

// Package matrix - determinant by cofactor expansion along row 0.
//
// Purpose:
//   - Exact small-matrix arithmetic: 1×1 and 2×2 closed forms, recursive
//     Laplace expansion above that. O(n!); no elimination or pivoting,
//     so results for integer inputs are reproducible term by term.
//   - Each recursion level acquires one minor buffer per term from the call's
//     scratch and releases it before the next term (defer in minorDeterminant).
//
// Complexity quicksheet:
//   - Time O(n!), live scratch O(n^2) (one minor per recursion depth).

package matrix

// minorInto copies src into dst skipping row and col, preserving the order of
// the remaining rows and columns. dst must already be (src.r-1)×(src.c-1).
// No validation, no allocation.
func minorInto(dst, src *Dense, row, col int) {
	var i, j, off int
	for i = 0; i < src.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < src.c; j++ {
			if j == col {
				continue
			}
			dst.data[off] = src.data[i*src.c+j]
			off++
		}
	}
}

// minorDeterminant returns det of m with row and col removed.
// The minor buffer is owned by this frame: released on success, on an
// acquisition failure deeper down, and on any propagated error.
func minorDeterminant(m *Dense, row, col int, s *scratch) (float64, error) {
	buf, err := s.acquire(m.r-1, m.c-1)
	if err != nil {
		return 0, err
	}
	defer s.release(buf)

	minorInto(buf, m, row, col)

	return determinantWith(buf, s)
}

// determinantWith expands a valid square m along row 0.
// An acquisition failure aborts the whole expansion: a skipped term would
// silently corrupt the sum.
func determinantWith(m *Dense, s *scratch) (float64, error) {
	switch m.r {
	case 1:
		return m.data[0], nil
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2], nil
	}

	var (
		sum   = ZeroSum
		sign  = 1.0
		minor float64
		err   error
	)
	for j := 0; j < m.c; j++ {
		minor, err = minorDeterminant(m, 0, j, s)
		if err != nil {
			return 0, err
		}
		sum += m.data[j] * sign * minor
		sign = -sign
	}

	return sum, nil
}

// determinantOver validates m and expands it over a fresh scratch built from opts.
// The scratch is returned for accounting; errors are not yet op-tagged.
func determinantOver(m *Dense, opts []Option) (float64, *scratch, error) {
	s := newScratch(gatherOptions(opts...))
	if err := ValidateSquareMatrix(m); err != nil {
		return 0, s, err
	}
	d, err := determinantWith(m, s)

	return d, s, err
}

// Determinant computes det(m) by recursive cofactor expansion.
// Implementation:
//   - Stage 1: ValidateMatrix(m) then ValidateSquare(m).
//   - Stage 2: closed forms for n ≤ 2, expansion along row 0 otherwise.
//
// Errors:
//   - ErrInvalidMatrix     (invalid input, or a minor could not be acquired).
//   - ErrDimensionMismatch (non-square input).
//
// Complexity:
//   - Time O(n!). Fine for the small matrices this package targets.
func Determinant(m *Dense, opts ...Option) (float64, error) {
	d, _, err := determinantOver(m, opts)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return d, nil
}
