// SPDX-License-Identifier: MIT
// File: properties.go
// Role: Per-owner property tables (key -> ordered values) kept in lockstep
//       with their reverse Index.
// Determinism:
//   - Values under a key keep insertion order; Keys() is sorted.
// Concurrency:
//   - Not synchronized; the Graph serializes access.
//   - Rows are copy-on-write: every mutation installs a fresh row, so a
//     Properties value or a cloned table never observes later changes.

package core

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/google/btree"
)

// Properties is a read-only view of one owner's property table.
// The zero value is an empty table.
type Properties struct {
	values map[string][]Value
}

// Get returns a copy of the values stored under key, in insertion order.
// Absent keys yield nil.
func (p Properties) Get(key string) []Value {
	return slices.Clone(p.values[key])
}

// First returns the first value stored under key.
func (p Properties) First(key string) (Value, bool) {
	vs := p.values[key]
	if len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// Has reports whether at least one value is stored under key.
func (p Properties) Has(key string) bool {
	return len(p.values[key]) > 0
}

// Keys returns the property keys in ascending order.
func (p Properties) Keys() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Len returns the number of keys.
func (p Properties) Len() int { return len(p.values) }

// String renders the table as {k1: [v1 v2], k2: [v3]} with sorted keys.
func (p Properties) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, p.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// propertyRow is the stored table of one owner. values is never mutated
// after the row is inserted.
type propertyRow struct {
	owner  ID
	values map[string][]Value
}

func lessPropertyRow(a, b propertyRow) bool { return a.owner < b.owner }

// PropertyTable stores the property tables of a family of owners
// (all vertices, or all edges) and maintains their reverse Index.
type PropertyTable struct {
	rows  *btree.BTreeG[propertyRow]
	index *Index
}

// NewPropertyTable returns an empty table with its own empty Index.
func NewPropertyTable(degree int) *PropertyTable {
	return &PropertyTable{
		rows:  btree.NewG(degree, lessPropertyRow),
		index: NewIndex(degree),
	}
}

// Index returns the reverse index kept consistent with t.
func (t *PropertyTable) Index() *Index { return t.index }

// Set appends value to the values of key on owner, creating the key if absent.
// Complexity: O(log N + K) for K keys on owner.
func (t *PropertyTable) Set(owner ID, key string, value Value) {
	row, _ := t.rows.Get(propertyRow{owner: owner})

	next := make(map[string][]Value, len(row.values)+1)
	maps.Copy(next, row.values)
	// Fresh backing array: the old slice may be shared with snapshots.
	vs := make([]Value, 0, len(row.values[key])+1)
	vs = append(vs, row.values[key]...)
	next[key] = append(vs, value)

	t.rows.ReplaceOrInsert(propertyRow{owner: owner, values: next})
	t.index.Add(owner, key, value)
}

// Get returns a copy of the values of key on owner; nil when absent.
func (t *PropertyTable) Get(owner ID, key string) []Value {
	return t.Row(owner).Get(key)
}

// Row returns the full property table of owner; empty when owner has none.
func (t *PropertyTable) Row(owner ID) Properties {
	row, _ := t.rows.Get(propertyRow{owner: owner})
	return Properties{values: row.values}
}

// Remove deletes every value of key on owner. No-op if absent.
func (t *PropertyTable) Remove(owner ID, key string) {
	row, ok := t.rows.Get(propertyRow{owner: owner})
	if !ok {
		return
	}
	vs, ok := row.values[key]
	if !ok {
		return
	}
	for _, v := range vs {
		t.index.Delete(owner, key, v)
	}
	if len(row.values) == 1 {
		t.rows.Delete(row)
		return
	}
	next := maps.Clone(row.values)
	delete(next, key)
	t.rows.ReplaceOrInsert(propertyRow{owner: owner, values: next})
}

// RemoveOwner deletes the whole table of owner. No-op if absent.
func (t *PropertyTable) RemoveOwner(owner ID) {
	row, ok := t.rows.Delete(propertyRow{owner: owner})
	if !ok {
		return
	}
	for k, vs := range row.values {
		for _, v := range vs {
			t.index.Delete(owner, k, v)
		}
	}
}

// Owners returns the number of owners with at least one property.
func (t *PropertyTable) Owners() int { return t.rows.Len() }

// Clone returns a copy-on-write copy of t and its Index.
// Clone must not run concurrently with another Clone or a mutation of t.
func (t *PropertyTable) Clone() *PropertyTable {
	return &PropertyTable{rows: t.rows.Clone(), index: t.index.Clone()}
}
