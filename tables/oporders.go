// Package tables - operator ordering generator.
package tables

import "github.com/katalvlaran/nineop/expr"

// opOrders enumerates all 24 orderings of the four operators.
//
// Each expression uses each operator exactly once, so this is a permutation
// of a fixed multiset — not a free choice of operator per slot. That
// constraint shrinks the inner search space from 4⁴=256 to 4!=24 per shape.
//
// Complexity: O(4!·4) time.
func opOrders() [][]expr.Op {
	var (
		out  = make([][]expr.Op, 0, NumOpOrders)
		work = [expr.NumOperators]expr.Op{expr.OpAdd, expr.OpSub, expr.OpMul, expr.OpDiv}
	)

	// Classic swap-based permutation walk; the table is tiny, recursion is fine.
	var walk func(l int)
	walk = func(l int) {
		if l == expr.NumOperators-1 {
			row := make([]expr.Op, expr.NumOperators)
			copy(row, work[:])
			out = append(out, row)

			return
		}
		for i := l; i < expr.NumOperators; i++ {
			work[l], work[i] = work[i], work[l]
			walk(l + 1)
			work[l], work[i] = work[i], work[l] // backtrack
		}
	}
	walk(0)

	return out
}
