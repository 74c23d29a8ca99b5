// Package matrix is a small dense-matrix arithmetic library.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with an explicit lifecycle
//     (NewDense, Validate, Release) and bounds-checked At/Set.
//   - Element-wise Add/Sub, Scale, Mul, Transpose and tolerance-based Equal.
//   - Determinant by recursive cofactor expansion along the first row.
//   - Cofactors (the complement matrix) and Inverse by the adjugate method.
//   - Conversions to and from gonum's mat.Dense.
//
// Every producing operation returns a freshly owned *Dense or one of the
// sentinel errors in errors.go: ErrInvalidMatrix, ErrDimensionMismatch,
// ErrSingular. Checks always run in that order.
//
// Determinant and Cofactors are O(n!) on purpose: the expansion is exact term
// by term for small integer matrices. Temporaries acquired during the
// recursion are released on every exit path, and WithAllocLimit bounds how
// many cells one call may hold at once.
//
// DefaultEpsilon (1e-7) is the single tolerance used by Equal and by the
// singularity check in Inverse; WithEpsilon overrides it per call.
package matrix
