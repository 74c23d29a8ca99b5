// Package densemat is a small dense-matrix arithmetic library.
//
// Everything lives in the matrix subpackage:
//
//	matrix/: Dense value type, lifecycle (NewDense/Validate/Release),
//	          Add/Sub/Scale/Mul/Transpose/Equal, Determinant by cofactor
//	          expansion, Cofactors and Inverse by the adjugate method,
//	          gonum interop.
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a) // [[0.6, -0.7], [-0.2, 0.4]]
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
