// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), lifecycle & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Own the matrix lifecycle: NewDense creates, Validate gates, Release drops the buffer.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Release: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"         // method tag used in error wrappers
	ctxSet     = "Set"        // method tag used in error wrappers
	ctxFromRow = "NewFromRows" // ctor tag
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// maxCells caps rows*cols so the buffer's byte size stays within what the Go
// runtime will hand out for a single slice (2^48 bytes on 64-bit platforms).
// Larger shapes are reported as ErrInvalidShape instead of panicking in make.
const maxCells = min(math.MaxInt/8, 1<<45)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Produces "Dense.<method>(row,col): <sentinel>" and preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols); both are 0 once released.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set (policy default from options.go).
//
// The zero value is an invalid (never created) matrix. Release is safe on it.
type Dense struct {
	r, c           int       // row and column counts (>=1 while valid)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0 and rows*cols ≤ maxCells; else ErrInvalidShape.
//   - Stage 2: allocate zero-filled buffer and initialize policy.
//
// Behavior highlights:
//   - No panics on user errors; nothing is allocated when the shape is rejected.
//   - Forbids empty dimensions so a 0×N matrix never looks valid.
//
// Errors:
//   - ErrInvalidShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidShape
	}
	// A buffer the runtime cannot represent is a failed allocation.
	if rows > maxCells/cols {
		return nil, ErrInvalidShape
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// newDenseWithPolicy is a helper for tests to override numeric policy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	m.validateNaNInf = validateNaNInf

	return m, nil
}

// NewIdentity returns I_n (n×n, ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	id, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1.0
	}

	return id, nil
}

// NewFromRows builds a Dense from a row slice, copying every value.
// All rows must be non-empty and of equal length (ErrInvalidShape otherwise);
// NaN/±Inf are rejected with ErrNaNInf under the default numeric policy.
// Complexity: O(r*c).
func NewFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidShape
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRow, i, len(rows[i]), m.c, ErrInvalidShape)
		}
		for j = 0; j < m.c; j++ {
			v = rows[i][j]
			if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
				return nil, denseErrorf(ctxFromRow, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Validate reports whether m is a well-formed matrix: non-nil, storage
// present and both dimensions at least 1. Every public operation runs it on
// each operand before doing anything else.
// Complexity: O(1).
func Validate(m *Dense) bool {
	return m != nil && m.r >= 1 && m.c >= 1 && m.data != nil && len(m.data) == m.r*m.c
}

// Release drops the backing storage and zeroes the dimensions.
// Idempotent: calling it on a nil, zero-value or already released matrix is a no-op.
func (m *Dense) Release() {
	if m == nil {
		return
	}
	m.data = nil
	m.r, m.c = 0, 0
}

// Rows returns the row count (0 after Release). Complexity: O(1).
func (m *Dense) Rows() int {
	if m == nil {
		return 0
	}

	return m.r
}

// Cols returns the column count (0 after Release). Complexity: O(1).
func (m *Dense) Cols() int {
	if m == nil {
		return 0
	}

	return m.c
}

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.Rows(), m.Cols() }

// indexOf bounds-checks (row,col) and returns the row-major offset.
// Returns the bare ErrOutOfRange; At/Set wrap it with coordinates.
// A released matrix has r == c == 0, so every index is out of range.
func (m *Dense) indexOf(row, col int) (int, error) {
	if m == nil || row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for NaN/±Inf under the numeric policy.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy with its own buffer and the same numeric policy.
// Cloning an invalid matrix yields an invalid zero Dense (never nil).
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	if !Validate(m) {
		return &Dense{}
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// String renders rows as "[a, b]\n" lines with %g values. Intended for debugging.
func (m *Dense) String() string {
	if m == nil {
		return ""
	}
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprintf(&b, "%g", m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
