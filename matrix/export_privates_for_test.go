// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and scratch accounting.
//
// Purpose:
//   - Expose unexported minorInto and the scratch live/peak counters to matrix_test ONLY.
//   - Let tests assert the release discipline: zero live cells after every call,
//     on success and on every failure path.
//
// Build Policy:
//   - _test.go file in package matrix: invisible in production builds.

var (
	// ExportedMinorInto exposes minorInto for white-box tests.
	ExportedMinorInto = minorInto
	// ExportedNewDenseWithPolicy exposes newDenseWithPolicy for white-box tests.
	ExportedNewDenseWithPolicy = newDenseWithPolicy
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly    = panicEpsilonInvalid
	PanicAllocLimitInvalid_TestOnly = panicAllocLimitInvalid
)

// ScratchStats is a read-only snapshot of a scratch after a call.
type ScratchStats struct {
	Live    int // cells still owned by the scratch (must be 0)
	Buffers int // matrices still owned by the scratch (must be 0)
	Peak    int // high-water mark of live cells during the call
}

func statsOf(s *scratch) ScratchStats {
	return ScratchStats{Live: s.live, Buffers: s.buffers, Peak: s.peak}
}

// DeterminantTracked_TestOnly runs Determinant's body and reports scratch accounting.
func DeterminantTracked_TestOnly(m *Dense, opts ...Option) (float64, ScratchStats, error) {
	d, s, err := determinantOver(m, opts)

	return d, statsOf(s), err
}

// CofactorsTracked_TestOnly runs Cofactors' body and reports scratch accounting.
func CofactorsTracked_TestOnly(m *Dense, opts ...Option) (*Dense, ScratchStats, error) {
	res, s, err := cofactorsOver(m, opts)

	return res, statsOf(s), err
}

// InverseTracked_TestOnly runs Inverse's body and reports scratch accounting.
func InverseTracked_TestOnly(m *Dense, opts ...Option) (*Dense, ScratchStats, error) {
	res, s, err := inverseOver(m, opts)

	return res, statsOf(s), err
}

// ScratchAcquire_TestOnly makes one acquisition of r×c cells against a fresh
// scratch with the given cell budget and reports the outcome.
func ScratchAcquire_TestOnly(limit, r, c int) (ScratchStats, error) {
	s := newScratch(NewMatrixOptions(WithAllocLimit(limit)))
	m, err := s.acquire(r, c)
	if err == nil {
		s.release(m)
	}

	return statsOf(s), err
}
