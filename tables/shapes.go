// Package tables - RPN shape generator.
package tables

import "github.com/katalvlaran/nineop/expr"

// shapes enumerates every valid postfix token shape for a 5-operand,
// 4-operator expression: 9-token sequences where, scanning left to right,
// the running surplus of operands over operators never drops below zero and
// an operator may only appear when the surplus is at least 2 just before it
// (two values available to pop). Exactly 14 such shapes exist — the Catalan
// count for a binary tree with 5 leaves.
//
// Constrained backtracking: at each position, try an operand token while
// fewer than 5 are used, then an operator token while fewer than 4 are used
// and the surplus allows it. A completed length-9 candidate necessarily has
// 5 operand and 4 operator tokens and a final surplus of exactly 1.
//
// Complexity: O(Catalan(4)·ShapeLen) time.
func shapes() [][]expr.Token {
	var (
		out = make([][]expr.Token, 0, NumShapes)
		cur [expr.ShapeLen]expr.Token // shape under construction
	)

	var walk func(pos, operands, operators int)
	walk = func(pos, operands, operators int) {
		if pos == expr.ShapeLen {
			row := make([]expr.Token, expr.ShapeLen)
			copy(row, cur[:])
			out = append(out, row)

			return
		}
		if operands < expr.NumOperands {
			cur[pos] = expr.TokOperand
			walk(pos+1, operands+1, operators)
		}
		// Operator needs two stack values: surplus = operands-operators ≥ 2.
		if operators < expr.NumOperators && operands-operators >= 2 {
			cur[pos] = expr.TokOperator
			walk(pos+1, operands, operators+1)
		}
	}
	walk(0, 0, 0)

	return out
}
