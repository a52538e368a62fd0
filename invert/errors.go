// SPDX-License-Identifier: MIT
// Package invert: sentinel error set.
// Inversion failures are NOT declared here: Solve propagates the inverter's
// errors (ops.ErrSingular, matrix.ErrDimensionMismatch, ...) unchanged, so
// callers match them against the originating package's sentinels.

package invert

import "errors"

// ErrNilCache indicates that a nil *Cache was passed to Solve or one of the
// accessors' constructors.
var ErrNilCache = errors.New("invert: nil cache")
