// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin entry points with intention-revealing names.
//   - Avoid any logic duplication: each facade delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change validation order or numeric policy of the kernels.
//   - Options pass through unchanged.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense.
func NewZeros(rows, cols int) (*Dense, error) { return NewDense(rows, cols) }

// ZerosLike returns a new zero matrix with the same shape as m.
// ErrInvalidMatrix when m is invalid.
func ZerosLike(m *Dense) (*Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return NewDense(m.r, m.c)
}

// IdentityLike returns I with dimension = Rows(m); requires a valid square m.
func IdentityLike(m *Dense) (*Dense, error) {
	if err := ValidateSquareMatrix(m); err != nil {
		return nil, matrixErrorf("IdentityLike", err)
	}

	return NewIdentity(m.r)
}

// ---------- Linear Algebra (facades map 1:1 to kernels) ----------

// Sum is an alias for Add: element-wise a + b.
func Sum(a, b *Dense, opts ...Option) (*Dense, error) { return Add(a, b, opts...) }

// Diff is an alias for Sub: element-wise a − b.
func Diff(a, b *Dense, opts ...Option) (*Dense, error) { return Sub(a, b, opts...) }

// Product is an alias for Mul: matrix product a × b.
func Product(a, b *Dense, opts ...Option) (*Dense, error) { return Mul(a, b, opts...) }

// T is an alias for Transpose: returns mᵀ.
func T(m *Dense, opts ...Option) (*Dense, error) { return Transpose(m, opts...) }

// ScaleBy is an alias for Scale: alpha*m.
func ScaleBy(m *Dense, alpha float64, opts ...Option) (*Dense, error) {
	return Scale(m, alpha, opts...)
}

// Det is an alias for Determinant.
func Det(m *Dense, opts ...Option) (float64, error) { return Determinant(m, opts...) }

// Complements is an alias for Cofactors (the algebraic complement matrix).
func Complements(m *Dense, opts ...Option) (*Dense, error) { return Cofactors(m, opts...) }

// InverseOf is an alias for Inverse (adjugate method).
func InverseOf(m *Dense, opts ...Option) (*Dense, error) { return Inverse(m, opts...) }
