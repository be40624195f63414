// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the arithmetic operations.
// This file defines:
//   - Reduction (the multiply reduction policy),
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - Deterministic behavior: no implicit randomness; loop orders are fixed.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import (
	"fmt"

	"go.uber.org/zap"
)

// Reduction selects how Mul folds the inner dimension.
type Reduction int

const (
	// ReduceProduct is the standard matrix product: Σ_k a[i,k] * b[k,j].
	ReduceProduct Reduction = iota

	// ReduceLegacySum reproduces the historical kernel that summed
	// a[i,k] + b[k,j] over k instead of multiplying. Kept only for
	// compatibility with results produced by that kernel.
	ReduceLegacySum
)

// String implements fmt.Stringer.
func (r Reduction) String() string {
	switch r {
	case ReduceProduct:
		return "product"
	case ReduceLegacySum:
		return "legacy-sum"
	default:
		return fmt.Sprintf("Reduction(%d)", int(r))
	}
}

// valid reports whether r is one of the declared reductions.
func (r Reduction) valid() bool {
	return r == ReduceProduct || r == ReduceLegacySum
}

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultReduction is the corrected multiply semantics.
	DefaultReduction = ReduceProduct

	// DefaultStrictBounds keeps the silent At contract inside kernels.
	DefaultStrictBounds = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicReductionInvalid = "matrix: WithReduction: unknown reduction"
	panicLoggerNil        = "matrix: WithLogger: logger must not be nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	reduction Reduction   // DefaultReduction
	strict    bool        // DefaultStrictBounds
	logger    *zap.Logger // nil ⇒ package Logger()
}

// WithReduction selects the multiply reduction.
// Panics on values other than ReduceProduct and ReduceLegacySum.
func WithReduction(r Reduction) Option {
	if !r.valid() {
		panic(panicReductionInvalid)
	}

	return func(o *Options) { o.reduction = r }
}

// WithStrictBounds makes kernels read operands through AtChecked when the
// operand provides it, so an operand whose reported shape exceeds its storage
// fails with ErrOutOfRange instead of contributing zero values.
func WithStrictBounds() Option {
	return func(o *Options) { o.strict = true }
}

// WithLogger overrides the package logger for a single call.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves defaults, then applies opts in order (last wins).
func gatherOptions(opts ...Option) Options {
	o := Options{
		reduction: DefaultReduction,
		strict:    DefaultStrictBounds,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	return o
}
