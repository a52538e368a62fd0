// SPDX-License-Identifier: MIT

// Package invert: functional configuration for Solve.
// This file defines:
//   - Option (functional options with internal state),
//   - documented defaults,
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.

package invert

import (
	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/ops"
)

// HitMessage is the notification emitted by Solve on every cache hit.
const HitMessage = "invert: returning cached inverse"

// Inverter is the signature of the inversion primitive: it takes a square
// matrix and returns its inverse, failing on non-square or singular input.
// Solve treats it as an opaque collaborator and propagates its errors
// unchanged.
type Inverter func(matrix.Matrix) (matrix.Matrix, error)

// Notifier receives human-readable cache-hit messages. It carries no return
// value and must not affect control flow; Solve calls it while holding the
// cache lock, so implementations should return promptly.
type Notifier func(msg string)

// options is the gathered internal state consumed by Solve.
type options struct {
	inverter Inverter
	notifier Notifier
}

// Option mutates the internal options state.
type Option func(*options)

// WithInverter swaps the inversion primitive used on cache misses.
// Panics on a nil fn (programmer error, not a runtime condition).
func WithInverter(fn Inverter) Option {
	if fn == nil {
		panic("invert: WithInverter(nil)")
	}

	return func(o *options) { o.inverter = fn }
}

// WithNotifier installs the sink for cache-hit notifications.
// The default sink discards messages; pass e.g. a log.Printf adapter to
// surface them. Panics on a nil fn (programmer error).
func WithNotifier(fn Notifier) Option {
	if fn == nil {
		panic("invert: WithNotifier(nil)")
	}

	return func(o *options) { o.notifier = fn }
}

// discard is the default notifier.
func discard(string) {}

// gatherOptions applies opts over the documented defaults:
// inverter = ops.Inverse, notifier = discard.
func gatherOptions(opts ...Option) options {
	o := options{inverter: ops.Inverse, notifier: discard}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
