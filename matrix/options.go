// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance shared by Equal and the singular
	// check in Inverse. Both read it from the same Options within a call.
	DefaultEpsilon = 1e-7

	// DefaultValidateNaNInf toggles strict finite-value validation in Set and NewFromRows.
	DefaultValidateNaNInf = true

	// DefaultAllocLimit is the per-call budget of live cells; 0 means unlimited.
	DefaultAllocLimit = 0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicAllocLimitInvalid = "matrix: WithAllocLimit: cells must be non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps        float64 // >= 0; DefaultEpsilon
	allocLimit int     // >= 0; 0 = unlimited
}

// WithEpsilon sets the absolute tolerance used by Equal and by Inverse's
// singularity check.
//
// Panics with a stable message when eps is NaN, ±Inf or negative.
// Complexity: O(1).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithAllocLimit caps the number of cells a single call may hold live at once
// (its result plus every temporary minor). Exceeding the cap aborts the call
// with ErrInvalidMatrix and ErrAllocLimit after releasing everything it held.
// A zero limit disables the cap.
//
// Panics with a stable message when cells is negative.
func WithAllocLimit(cells int) Option {
	if cells < 0 {
		panic(panicAllocLimitInvalid)
	}

	return func(o *Options) { o.allocLimit = cells }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Exposed so callers can inspect the effective configuration.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the effective tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// AllocLimit returns the effective per-call cell budget (0 = unlimited).
func (o Options) AllocLimit() int { return o.allocLimit }

// gatherOptions applies user-provided setters on top of the defaults
// (last-writer-wins). Nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:        DefaultEpsilon,
		allocLimit: DefaultAllocLimit,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
