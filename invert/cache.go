// Package invert: the Cache state holder.
package invert

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/matcache/matrix"
)

// Cache pairs a mutable matrix with its lazily computed inverse.
//
// State transitions are a pure two-state machine per matrix generation:
// absent → populated (by Solve), reset to absent only by SetMatrix. A nil
// inv field means "absent". The mutex serializes every access, including
// the full read-check-compute-store sequence inside Solve, so a Cache may
// be shared across goroutines.
type Cache struct {
	mu  sync.Mutex
	mat matrix.Matrix // current subject value, never nil after construction
	inv matrix.Matrix // cached inverse of mat, nil when absent
}

// NewCache constructs a Cache around an initial matrix. The inverse slot
// starts absent.
// Errors: matrix.ErrNilMatrix on nil input. Squareness is deliberately not
// enforced here — a non-square matrix simply fails at Solve time with the
// inverter's dimension error.
func NewCache(m matrix.Matrix) (*Cache, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, fmt.Errorf("NewCache: %w", err)
	}

	return &Cache{mat: m}, nil
}

// SetMatrix replaces the stored matrix and unconditionally clears the
// cached inverse. This is the sole invalidation trigger. Dimension
// compatibility with the previous matrix is the caller's concern and is
// not checked.
// Errors: matrix.ErrNilMatrix on nil input; otherwise always succeeds.
// Complexity: O(1).
func (c *Cache) SetMatrix(m matrix.Matrix) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("SetMatrix: %w", err)
	}

	c.mu.Lock()
	c.mat = m
	c.inv = nil // invalidate: the old inverse no longer describes mat
	c.mu.Unlock()

	return nil
}

// Matrix returns the currently stored matrix. No side effects.
// Complexity: O(1).
func (c *Cache) Matrix() matrix.Matrix {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.mat
}

// SetInverse stores inv as the cached inverse, overwriting any prior value.
// No validation is performed: the caller's contract is to pass the inverse
// of the *current* matrix, computed with no intervening SetMatrix. Solve is
// the intended (and, inside this module, the only) caller.
// Complexity: O(1).
func (c *Cache) SetInverse(inv matrix.Matrix) {
	c.mu.Lock()
	c.inv = inv
	c.mu.Unlock()
}

// Inverse returns the cached inverse and true, or (nil, false) when the
// slot is absent. No side effects.
// Complexity: O(1).
func (c *Cache) Inverse() (matrix.Matrix, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.inv, c.inv != nil
}
