// SPDX-License-Identifier: MIT

// Package matrix - per-call allocation owner.
//
// Purpose:
//   - Every matrix a public kernel allocates (its result and every temporary
//     minor) is acquired from one scratch owned by that call.
//   - Temporaries are released in the frame that acquired them (defer), so the
//     live count is back to zero on every exit path: success, early error, or an
//     error propagated from a deeper recursion level.
//   - The result is handed to the caller with detach only on success.
//
// Invariant:
//   - After a public call returns, its scratch holds zero live cells and zero
//     live buffers. Tests assert this through export_privates_for_test.go.

package matrix

import "fmt"

// scratch tracks the cells and buffers a single call currently owns.
// Not safe for concurrent use; one scratch never outlives its call.
type scratch struct {
	limit   int // max live cells; 0 = unlimited
	live    int // cells currently owned
	buffers int // matrices currently owned
	peak    int // high-water mark of live cells
}

// newScratch builds the allocation owner for one call from its options.
func newScratch(o Options) *scratch {
	return &scratch{limit: o.allocLimit}
}

// acquire allocates an r×c zero matrix and records it as owned.
// The budget is checked first, so a refused request allocates nothing.
// Fails with ErrInvalidMatrix+ErrAllocLimit when the budget would be exceeded,
// or ErrInvalidMatrix+ErrInvalidShape when NewDense rejects the shape.
// Nothing is recorded on failure.
func (s *scratch) acquire(r, c int) (*Dense, error) {
	// r*c > limit-live, written without the product so it cannot overflow.
	if s.limit > 0 && r > 0 && c > 0 && r > (s.limit-s.live)/c {
		return nil, fmt.Errorf("%w: %w (live %d + %d×%d > %d)",
			ErrInvalidMatrix, ErrAllocLimit, s.live, r, c, s.limit)
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMatrix, err)
	}
	s.live += r * c
	s.buffers++
	if s.live > s.peak {
		s.peak = s.live
	}

	return m, nil
}

// release drops m and un-records it. No-op for nil or already released m,
// so deferred releases stay safe after an explicit one.
func (s *scratch) release(m *Dense) {
	if !Validate(m) {
		return
	}
	s.live -= m.r * m.c
	s.buffers--
	m.Release()
}

// detach transfers ownership of m to the caller without releasing it.
func (s *scratch) detach(m *Dense) *Dense {
	if Validate(m) {
		s.live -= m.r * m.c
		s.buffers--
	}

	return m
}
