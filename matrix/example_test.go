package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// ExampleInverse inverts a 3×3 matrix by the adjugate method and checks the product.
func ExampleInverse() {
	a, _ := matrix.NewFromRows([][]float64{
		{2, 5, 7},
		{6, 3, 4},
		{5, -2, -3},
	})
	inv, err := matrix.Inverse(a)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(inv)

	id, _ := matrix.NewIdentity(3)
	p, _ := matrix.Mul(a, inv)
	fmt.Println("A·A⁻¹ == I:", matrix.Equal(p, id))

	// Output:
	// [1, -1, 1]
	// [-38, 41, -34]
	// [27, -29, 24]
	// A·A⁻¹ == I: true
}

// ExampleDeterminant shows the closed 2×2 form and the expansion for 3×3.
func ExampleDeterminant() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	b, _ := matrix.NewFromRows([][]float64{{1, 2, 3}, {0, 4, 2}, {5, 2, 1}})

	da, _ := matrix.Determinant(a)
	db, _ := matrix.Determinant(b)
	fmt.Println(da, db)

	// Output:
	// -2 -40
}

// ExampleCofactors prints the complement matrix of a 2×2 matrix.
func ExampleCofactors() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	c, _ := matrix.Cofactors(a)
	fmt.Print(c)

	// Output:
	// [4, -3]
	// [-2, 1]
}

// ExampleInverse_singular shows how callers distinguish error kinds.
func ExampleInverse_singular() {
	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {2, 4}})
	_, err := matrix.Inverse(a)
	fmt.Println(errors.Is(err, matrix.ErrSingular), err)

	// Output:
	// true Inverse: matrix: singular matrix
}

// ExampleDense_Release shows that Release is idempotent.
func ExampleDense_Release() {
	m, _ := matrix.NewDense(2, 3)
	m.Release()
	m.Release()
	fmt.Println(m.Rows(), m.Cols(), matrix.Validate(m))

	// Output:
	// 0 0 false
}
