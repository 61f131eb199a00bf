// SPDX-License-Identifier: MIT
// File: index.go
// Role: Reverse index (property key, property value) -> owner IDs.
// Determinism:
//   - Lookup/Scan yield owners in ascending ID order.
// Concurrency:
//   - Not synchronized. A PropertyTable owns its Index and the Graph
//     serializes access to both.

package core

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/google/btree"
)

// indexEntry is one (key, value, owner) fact. value is the canonical valueKey form.
type indexEntry struct {
	key   string
	value string
	owner ID
}

func lessIndexEntry(a, b indexEntry) bool {
	if a.key != b.key {
		return a.key < b.key
	}
	if a.value != b.value {
		return a.value < b.value
	}
	return a.owner < b.owner
}

// valueKey is the canonical, type-qualified form under which v is indexed.
// "1" (string) and 1 (int) therefore never collide. Reference kinds
// (pointer, map, chan, func, unsafe pointer) are keyed by address, so they
// match only the identical reference, never a value with equal contents.
func valueKey(v Value) string {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return fmt.Sprintf("%T\x1f@%p", v, v)
	}
	return fmt.Sprintf("%T\x1f%v", v, v)
}

// Index maps (key, value) pairs to the set of owners holding that value.
// Absent pairs are empty sets, never errors.
type Index struct {
	entries *btree.BTreeG[indexEntry]
}

// NewIndex returns an empty Index backed by a btree of the given degree.
func NewIndex(degree int) *Index {
	return &Index{entries: btree.NewG(degree, lessIndexEntry)}
}

// Add records that owner holds value under key. Idempotent.
// Complexity: O(log N).
func (x *Index) Add(owner ID, key string, value Value) {
	x.entries.ReplaceOrInsert(indexEntry{key: key, value: valueKey(value), owner: owner})
}

// Delete forgets that owner holds value under key. No-op if absent.
// Complexity: O(log N).
func (x *Index) Delete(owner ID, key string, value Value) {
	x.entries.Delete(indexEntry{key: key, value: valueKey(value), owner: owner})
}

// Contains reports whether owner holds value under key.
func (x *Index) Contains(owner ID, key string, value Value) bool {
	return x.entries.Has(indexEntry{key: key, value: valueKey(value), owner: owner})
}

// Scan lazily yields the owners holding value under key, ascending.
// Complexity: O(log N + k) for k matches.
func (x *Index) Scan(key string, value Value) iter.Seq[ID] {
	vk := valueKey(value)
	return func(yield func(ID) bool) {
		x.entries.AscendGreaterOrEqual(indexEntry{key: key, value: vk}, func(e indexEntry) bool {
			if e.key != key || e.value != vk {
				return false
			}
			return yield(e.owner)
		})
	}
}

// Lookup returns the owners holding value under key, ascending.
// The result is nil when nothing matches.
func (x *Index) Lookup(key string, value Value) []ID {
	var out []ID
	for id := range x.Scan(key, value) {
		out = append(out, id)
	}
	return out
}

// Len returns the number of (key, value, owner) facts.
func (x *Index) Len() int { return x.entries.Len() }

// Clone returns a copy-on-write copy. Clone must not run concurrently with
// another Clone or a mutation of x.
func (x *Index) Clone() *Index {
	return &Index{entries: x.entries.Clone()}
}
