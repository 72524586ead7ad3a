// SPDX-License-Identifier: MIT

// Package expr - shared scanning helpers for the lazy nodes.
//
// Every node implements vec.Scanner. Structure-aware nodes scan the stored
// entries of their operands; the rest fall back to enumerating non-zero
// computed values over the full extent. Either way the emitted order is
// ascending by index, which is what Materialize's ordered fill relies on.

package expr

import "github.com/katalvlaran/sparsevec/vec"

// valueScan enumerates the non-zero computed values of e in ascending
// index order. The generic fallback for nodes without sparse structure.
// Complexity: O(Size * At).
func valueScan(e vec.Expr, fn func(index int, value float64) bool) {
	for i, n := 0, e.Size(); i < n; i++ {
		if v := e.At(i); v != 0 {
			if !fn(i, v) {
				return
			}
		}
	}
}

// countScan counts the entries a scan emits. Used by the NonZeros
// implementations of lazy nodes, where the count is not stored anywhere.
func countScan(scan func(fn func(index int, value float64) bool)) int {
	count := 0
	scan(func(int, float64) bool {
		count++

		return true
	})

	return count
}

// entriesOf snapshots a scanner's stored entries. Callback-style scans
// cannot be co-iterated lazily, so union merges capture both sides first.
// Complexity: O(nnz) time and space.
func entriesOf(sc vec.Scanner) []vec.Entry {
	out := make([]vec.Entry, 0, sc.NonZeros())
	sc.Scan(func(i int, v float64) bool {
		out = append(out, vec.Entry{Index: i, Value: v})

		return true
	})

	return out
}

// mergeScan walks the union of two sorted entry sets, emitting
// op(left, right) at every index stored on either side. Absent sides
// contribute zero. May emit computed zeros (cancellation); consumers that
// store entries skip defaults themselves.
func mergeScan(l, r vec.Scanner, op func(a, b float64) float64, fn func(index int, value float64) bool) {
	le, re := entriesOf(l), entriesOf(r)
	li, ri := 0, 0
	for li < len(le) || ri < len(re) {
		switch {
		case ri == len(re) || (li < len(le) && le[li].Index < re[ri].Index):
			if !fn(le[li].Index, op(le[li].Value, 0)) {
				return
			}
			li++
		case li == len(le) || re[ri].Index < le[li].Index:
			if !fn(re[ri].Index, op(0, re[ri].Value)) {
				return
			}
			ri++
		default: // same index on both sides
			if !fn(le[li].Index, op(le[li].Value, re[ri].Value)) {
				return
			}
			li++
			ri++
		}
	}
}
