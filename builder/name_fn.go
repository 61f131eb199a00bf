// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// NameFn generates the name property of a vertex from its zero-based index
// within one constructor. It must be pure and deterministic.
type NameFn func(idx int) string

// DefaultNameFn returns "v" followed by the decimal index, e.g. 0→"v0".
func DefaultNameFn(idx int) string {
	return "v" + strconv.Itoa(idx)
}

// SymbolNameFn returns the uppercase Latin letter for idx in [0..25].
// Panics outside that range.
func SymbolNameFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolNameFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnNameFn returns the spreadsheet column name for idx, e.g. 0→"A", 26→"AA".
// Panics if idx < 0.
func ExcelColumnNameFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnNameFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
