// SPDX-License-Identifier: MIT

// Package matrix - inverse via the adjugate: A⁻¹ = adj(A) / det(A), adj(A) = Cᵀ.
//
// Purpose:
//   - Compose Determinant, Cofactors, Transpose and Scale over one scratch so
//     the allocation budget and the release discipline cover the whole chain.
//   - Intermediates (C, Cᵀ) are released on every path; only the final scaled
//     matrix is detached to the caller.

package matrix

import (
	"errors"
	"fmt"
	"math"
)

// asInvalid reports a failure inside a composed step as ErrInvalidMatrix,
// keeping the original cause reachable through errors.Is.
func asInvalid(err error) error {
	if errors.Is(err, ErrInvalidMatrix) {
		return err
	}

	return fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
}

// adjugateWith returns Cᵀ for a valid square m. C is released before
// returning; Cᵀ is owned by s. A 1×1 m fails in cofactorsWith.
func adjugateWith(m *Dense, s *scratch) (*Dense, error) {
	c, err := cofactorsWith(m, s)
	if err != nil {
		return nil, err
	}
	defer s.release(c)

	return transposeWith(c, s)
}

// Inverse computes A⁻¹ by the adjugate method.
// Implementation:
//   - Stage 1: ValidateMatrix(m), ValidateSquare(m).
//   - Stage 2: det = Determinant(m); |det| ≤ eps ⇒ ErrSingular.
//   - Stage 3: adj = Cofactors(m)ᵀ; result = adj * (1/det); release intermediates.
//
// Errors:
//   - ErrInvalidMatrix     (invalid input, or any composed step failed; a 1×1
//     input has no cofactor matrix, so ErrDimensionMismatch is reachable too).
//   - ErrDimensionMismatch (non-square input).
//   - ErrSingular          (|det| ≤ eps; eps = DefaultEpsilon unless WithEpsilon).
//
// Complexity:
//   - Time O(n^2 · (n-1)!), dominated by the cofactor matrix.
//
// Notes:
//   - Naive cofactor arithmetic is exact term by term for small integer inputs;
//     no pivoting or elimination is used.
func Inverse(m *Dense, opts ...Option) (*Dense, error) {
	res, _, err := inverseOver(m, opts)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return res, nil
}

// inverseOver validates m, runs the adjugate chain over a fresh scratch and
// detaches the result on success. Errors are not yet op-tagged.
func inverseOver(m *Dense, opts []Option) (*Dense, *scratch, error) {
	o := gatherOptions(opts...)
	s := newScratch(o)
	if err := ValidateSquareMatrix(m); err != nil {
		return nil, s, err
	}
	res, err := inverseWith(m, o.eps, s)
	if err != nil {
		return nil, s, err
	}

	return s.detach(res), s, nil
}

// inverseWith runs the adjugate chain for a valid square m over s.
// The returned matrix is owned by s; every intermediate is already released.
func inverseWith(m *Dense, eps float64, s *scratch) (*Dense, error) {
	det, err := determinantWith(m, s)
	if err != nil {
		return nil, asInvalid(err)
	}
	if math.Abs(det) <= eps {
		return nil, ErrSingular
	}

	adj, err := adjugateWith(m, s)
	if err != nil {
		return nil, asInvalid(err)
	}
	defer s.release(adj)

	res, err := scaleWith(adj, 1/det, s)
	if err != nil {
		return nil, asInvalid(err)
	}

	return res, nil
}
