// SPDX-License-Identifier: MIT
// File: ids.go
// Role: Identifier allocation shared by vertices and edges.
// Determinism:
//   - Next() is monotonic: 1, 2, 3, ... and never repeats for the life of the Allocator.
// Concurrency:
//   - Safe for concurrent callers (atomic counter).

package core

import "sync/atomic"

// Allocator issues unique, monotonically increasing identifiers.
// The zero value is ready to use; the first ID issued is 1.
type Allocator struct {
	last atomic.Uint64
}

// Next reserves and returns the next identifier.
// Complexity: O(1).
func (a *Allocator) Next() ID {
	return ID(a.last.Add(1))
}

// Last returns the most recently issued identifier, or 0 if none was issued.
func (a *Allocator) Last() ID {
	return ID(a.last.Load())
}
