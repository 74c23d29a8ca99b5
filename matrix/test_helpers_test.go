// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions shared by kernel tests.
//   • Keep all data finite so the NaN/Inf policy never interferes.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows BUILDS a *Dense from literal rows or fails the test.
//
// AI-Hints:
//   - Use with CompareExact for integer-like fixtures.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows: %v", err)
	}

	return m
}

// IdentityDense RETURNS I_n or fails the test.
func IdentityDense(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	if err != nil {
		t.Fatalf("NewIdentity(%d): %v", n, err)
	}

	return m
}

// MustSet WRITES v at (i,j) or fails the test.
func MustSet(t testing.TB, m *matrix.Dense, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// MustAt READS (i,j) or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// RandFilledDense RETURNS a new r×c Dense filled with deterministic U(-1,1).
// Determinism: identical seeds give identical matrices.
func RandFilledDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1) // 0*2-1=-1 || 1*2-1=1
		}
	}

	return m
}

// WellConditioned RETURNS a random n×n matrix with n+1 added to the diagonal.
// Strict diagonal dominance keeps it far from singular for property tests.
func WellConditioned(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	m := RandFilledDense(t, n, n, seed)
	for i := 0; i < n; i++ {
		MustSet(t, m, i, i, MustAt(t, m, i, i)+float64(n+1))
	}

	return m
}

// CompareExact ASSERTS m equals want cell by cell with ==.
// Use only for integer-like or carefully crafted small matrices.
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	r, c := m.Shape()
	if len(want) != r {
		t.Fatalf("CompareExact: Rows = %d; want %d", r, len(want))
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		if len(want[i]) != c {
			t.Fatalf("CompareExact: Cols[%d] = %d; want %d", i, c, len(want[i]))
		}
		for j = 0; j < c; j++ {
			if v = MustAt(t, m, i, j); v != want[i][j] {
				t.Fatalf("m[%d,%d]=%v; want %v", i, j, v, want[i][j])
			}
		}
	}
}

// CompareClose ASSERTS matrix.Equal(a, b) under an absolute tolerance.
func CompareClose(t testing.TB, a, b *matrix.Dense, atol float64) {
	t.Helper()
	if !matrix.Equal(a, b, matrix.WithEpsilon(atol)) {
		t.Fatalf("Equal=false (atol=%g)\n got:\n%s want:\n%s", atol, a, b)
	}
}

// AssertErrorIs FAILS unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v; got %v", target, err)
	}
}

// ExpectPanic ASSERTS that fn() panics (any value).
func ExpectPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic, got nil")
		}
	}()
	fn()
}
