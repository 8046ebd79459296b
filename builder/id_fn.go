// Package builder provides vertex ID schemes for generated graphs.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index.
// It must be a pure, deterministic function: the same idx always yields
// the same string. Panics indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn returns the Excel-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA". Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
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
