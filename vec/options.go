// SPDX-License-Identifier: MIT

// Package vec: functional configuration for the numeric policy of the
// concrete containers. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - validateNaNInf controls whether Set/Insert/Append reject non-finite
//     values at ingestion. It is ON by default: a sparse container silently
//     holding NaN breaks every downstream comparison and ordering guarantee.
//   - eps defines what "default value" means for Append's check flag: values
//     with |v| <= eps are treated as default and skipped. The default of 0
//     means only exact zeros are skipped.

package vec

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set,
	// Insert and Append.
	DefaultValidateNaNInf = true

	// DefaultEpsilon is the non-negative tolerance used to classify a value
	// as "default" (skippable) by Append's check flag. Zero means exact
	// comparison only.
	DefaultEpsilon = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid    = "vec: WithEpsilon: eps must be finite, non-negative"
	panicEraseRangeInvalid = "vec: EraseRange: positions must satisfy 0 <= first <= last <= NonZeros()"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public entry points
// accept `...Option` and internally resolve them via gatherOptions.
type Options struct {
	validateNaNInf bool    // DefaultValidateNaNInf
	eps            float64 // >= 0; DefaultEpsilon
}

// ---------- Constructors (WithX) ----------

// WithValidation toggles NaN/Inf rejection at ingestion.
// Disabling it is legitimate for pipelines that sanitize upstream and want
// the last few nanoseconds back, never for dirty data.
func WithValidation(enabled bool) Option {
	return func(o *Options) { o.validateNaNInf = enabled }
}

// WithEpsilon sets the non-negative tolerance used by default-value checks.
// Panics on NaN, ±Inf or negative eps (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// ---------- Internal resolution ----------

// gatherOptions applies opts over the documented defaults and returns the
// effective configuration. Last writer wins; application is deterministic.
func gatherOptions(opts ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		eps:            DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
