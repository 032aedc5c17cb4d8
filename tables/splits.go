// Package tables - split generator.
package tables

import "github.com/katalvlaran/nineop/expr"

// splits enumerates all strictly increasing 4-tuples of cut points
// c1<c2<c3<c4 with 1 ≤ ci ≤ 8 — choosing 4 of the 8 gaps between 9 ordered
// digit positions. Each tuple, closed by the implicit boundaries 0 and 9,
// cuts the permutation into five nonempty contiguous groups whose lengths
// sum to 9.
//
// The enumeration is a small recursive combination walk; at 70 results and
// depth 4, recursion beats an iterative rewrite on clarity.
//
// Complexity: O(C(8,4)·4) time.
func splits() [][]int {
	var (
		out = make([][]int, 0, NumSplits)
		cur [expr.NumOperators]int // cut points under construction
	)

	var walk func(start, depth int)
	walk = func(start, depth int) {
		if depth == expr.NumOperators {
			row := make([]int, expr.NumOperators)
			copy(row, cur[:])
			out = append(out, row)

			return
		}
		// Cut points live in [1, NumDigits-1]; start enforces strict increase.
		for c := start; c <= expr.NumDigits-1; c++ {
			cur[depth] = c
			walk(c+1, depth+1)
		}
	}
	walk(1, 0)

	return out
}
