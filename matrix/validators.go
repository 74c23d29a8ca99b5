// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for operand checks.
//   - Keep kernels minimal by delegating validity/shape checks here.
//   - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Note:
//   - Composite validators follow a fixed sequence: Valid(a) → Valid(b) → Shape.
//     That order is observable: an invalid operand always wins over a shape mismatch.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateMatrix – Ensures m passes Validate.
//
// Returns ErrInvalidMatrix for nil, zero-value or released matrices.
// Complexity: O(1).
func ValidateMatrix(m *Dense) error {
	if !Validate(m) {
		return validatorErrorf("ValidateMatrix", ErrInvalidMatrix)
	}

	return nil
}

// ValidateSameShape – Ensures a and b have equal dimensions.
// Assumes both are valid (caller must ensure).
func ValidateSameShape(a, b *Dense) error {
	if a.r != b.r {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.c != b.c {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that a valid m is square.
func ValidateSquare(m *Dense) error {
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: Valid(a) → Valid(b) → SameShape.
func ValidateBinarySameShape(a, b *Dense) error {
	if err := ValidateMatrix(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateMatrix(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Composite: Valid(a) → Valid(b) → a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if err := ValidateMatrix(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateMatrix(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareMatrix – Composite: Valid(m) → Square.
func ValidateSquareMatrix(m *Dense) error {
	if err := ValidateMatrix(m); err != nil {
		return validatorErrorf("ValidateSquareMatrix", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareMatrix", err)
	}

	return nil
}
