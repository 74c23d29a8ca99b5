// SPDX-License-Identifier: MIT

// Package matrix: conversions to and from gonum's mat package.
//
// Both directions copy the cells, so ownership stays exclusive: a Dense never
// shares its buffer with a *mat.Dense and vice versa.

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum returns a *mat.Dense holding a copy of m.
// ErrInvalidMatrix when m is invalid (gonum would panic on an empty shape).
func (m *Dense) ToGonum() (*mat.Dense, error) {
	if err := ValidateMatrix(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp), nil
}

// FromGonum copies any gonum matrix into a new Dense.
//
// Errors:
//   - ErrInvalidMatrix (nil src), ErrInvalidShape (empty dims).
//
// Notes:
//   - Cells are copied verbatim; the NaN/Inf policy applies to later Set calls only.
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrInvalidMatrix)
	}
	r, c := src.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			res.data[i*c+j] = src.At(i, j)
		}
	}

	return res, nil
}
