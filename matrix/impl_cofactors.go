// SPDX-License-Identifier: MIT

// Package matrix - cofactor (complement) matrix.
//
// Purpose:
//   - C[i,j] = (-1)^(i+j) * det(M_ij) for every cell of a square matrix, n ≥ 2.
//   - Each minor is acquired from the call's scratch and released before the
//     next cell; the result is released too if any cell fails.

package matrix

// cofactorSign returns (-1)^(i+j).
func cofactorSign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1.0
	}

	return -1.0
}

// cofactorsWith fills result[i,j] = (-1)^(i+j) * det(minor(i,j)) for a valid
// square m. A 1×1 m has no minors and yields ErrDimensionMismatch.
// The result is owned by s until the caller detaches it; on any failure it is
// released here and nil is returned.
func cofactorsWith(m *Dense, s *scratch) (*Dense, error) {
	if m.r < 2 {
		return nil, ErrDimensionMismatch
	}
	res, err := s.acquire(m.r, m.c)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			d, err = minorDeterminant(m, i, j, s)
			if err != nil {
				s.release(res)
				return nil, err
			}
			res.data[i*m.c+j] = cofactorSign(i, j) * d
		}
	}

	return res, nil
}

// cofactorsOver validates m, builds its cofactor matrix over a fresh scratch
// and detaches the result on success. Errors are not yet op-tagged.
func cofactorsOver(m *Dense, opts []Option) (*Dense, *scratch, error) {
	s := newScratch(gatherOptions(opts...))
	if err := ValidateSquareMatrix(m); err != nil {
		return nil, s, err
	}
	res, err := cofactorsWith(m, s)
	if err != nil {
		return nil, s, err
	}

	return s.detach(res), s, nil
}

// Cofactors returns the cofactor (complement) matrix of m:
// C[i,j] = (-1)^(i+j) * det(M_ij), M_ij being m without row i and column j.
//
// Errors:
//   - ErrInvalidMatrix     (invalid input, or a minor/result could not be acquired).
//   - ErrDimensionMismatch (non-square, or 1×1: no cofactor matrix is defined).
//
// Complexity:
//   - Time O(n^2 · (n-1)!), Space O(n^2).
func Cofactors(m *Dense, opts ...Option) (*Dense, error) {
	res, _, err := cofactorsOver(m, opts)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	return res, nil
}
