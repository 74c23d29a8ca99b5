// SPDX-License-Identifier: MIT
// Package matrix provides element-wise addition, subtraction, matrix
// multiplication, transpose, scalar scaling and tolerance-based equality on
// Dense matrices. All functions validate fail-fast (validity first, then
// shape) and return a freshly allocated result; operands are never mutated.
//
// Notes:
//   - Public kernels resolve ...Option, acquire their result from a per-call
//     scratch and detach it on success. Internal *With variants take the
//     caller's scratch so composed kernels (Inverse) share one budget.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial accumulator value for dot products and expansions.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opAdd         = "Add"
	opSub         = "Sub"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opDeterminant = "Determinant"
	opCofactors   = "Cofactors"
	opInverse     = "Inverse"
	opToGonum     = "ToGonum"
	opFromGonum   = "FromGonum"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Equal reports whether a and b have the same shape and every pair of cells
// differs by at most eps in absolute value (DefaultEpsilon unless WithEpsilon).
// Returns false when either operand is invalid. Stops at the first mismatch.
//
// Complexity: O(r*c) worst case.
func Equal(a, b *Dense, opts ...Option) bool {
	if !Validate(a) || !Validate(b) {
		return false
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	eps := gatherOptions(opts...).eps
	for idx := range a.data {
		if math.Abs(a.data[idx]-b.data[idx]) > eps {
			return false
		}
	}

	return true
}

// addSub computes out = a + sign*b for sign ∈ {+1, -1}.
// Keeping sign as a float avoids a branch inside the loop.
func addSub(a, b *Dense, sign float64, opTag string, s *scratch) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res, err := s.acquire(a.r, a.c)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	for idx := range res.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B into a fresh Dense.
//
// Errors:
//   - ErrInvalidMatrix (invalid operand), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b *Dense, opts ...Option) (*Dense, error) {
	s := newScratch(gatherOptions(opts...))
	res, err := addSub(a, b, +1, opAdd, s)
	if err != nil {
		return nil, err
	}

	return s.detach(res), nil
}

// Sub computes the element-wise difference C = A - B into a fresh Dense.
// Same contract as Add.
func Sub(a, b *Dense, opts ...Option) (*Dense, error) {
	s := newScratch(gatherOptions(opts...))
	res, err := addSub(a, b, -1, opSub, s)
	if err != nil {
		return nil, err
	}

	return s.detach(res), nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A, B and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→j→k triple loop over the flat buffers.
//
// Errors:
//   - ErrInvalidMatrix (invalid operand), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	s := newScratch(gatherOptions(opts...))
	aRows, aCols, bCols := a.r, a.c, b.c
	res, err := s.acquire(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k    int
		rowOffsetA int
		current    float64
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				current += a.data[rowOffsetA+k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = current
		}
	}

	return s.detach(res), nil
}

// transposeWith writes mᵀ into a buffer acquired from s.
// Caller has validated m.
func transposeWith(m *Dense, s *scratch) (*Dense, error) {
	rows, cols := m.r, m.c
	res, err := s.acquire(cols, rows)
	if err != nil {
		return nil, err
	}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with rows and columns swapped.
//
// Errors:
//   - ErrInvalidMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m *Dense, opts ...Option) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	s := newScratch(gatherOptions(opts...))
	res, err := transposeWith(m, s)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return s.detach(res), nil
}

// scaleWith writes alpha*m into a buffer acquired from s.
// Caller has validated m.
func scaleWith(m *Dense, alpha float64, s *scratch) (*Dense, error) {
	res, err := s.acquire(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for idx := range res.data {
		res.data[idx] = m.data[idx] * alpha
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// alpha = 0 yields an explicit zero matrix with the same shape; NaN/Inf propagate.
//
// Errors:
//   - ErrInvalidMatrix.
func Scale(m *Dense, alpha float64, opts ...Option) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	s := newScratch(gatherOptions(opts...))
	res, err := scaleWith(m, alpha, s)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	return s.detach(res), nil
}
