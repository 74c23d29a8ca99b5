// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels (optionally wrapped with an
// operation tag) and tests MUST check them via errors.Is. No kernel panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for easy grepping. Kernels wrap
// sentinels as "<Op>: matrix: ..." via matrixErrorf; callers match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// invalid matrix -> dimension mismatch -> singular.

var (
	// ErrInvalidShape is returned by constructors when the requested shape is
	// not representable (rows<=0, cols<=0 or rows*cols beyond the cell cap).
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrInvalidMatrix indicates an operand failed validation (nil, released,
	// zero value) or that an internal allocation could not be satisfied.
	ErrInvalidMatrix = errors.New("matrix: invalid matrix")

	// ErrDimensionMismatch indicates individually valid operands whose shapes are
	// incompatible: Add/Sub with different shapes, Mul where a.Cols != b.Rows,
	// a non-square input to Determinant/Inverse, or a 1×1 input to Cofactors/Inverse.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Inverse when |det| does not exceed the epsilon.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) return this instead of panicking.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrAllocLimit is reported (together with ErrInvalidMatrix) when a call
	// would hold more live cells than its WithAllocLimit budget.
	ErrAllocLimit = errors.New("matrix: allocation limit exceeded")
)
