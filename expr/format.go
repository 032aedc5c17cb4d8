// Package expr - infix rendering of a winning combination.
//
// Format is a cold path: the coordinator calls it only when a worker
// improves its local best, so clarity wins over allocation thrift here.
package expr

import "strconv"

// Format replays shape with the same token-consumption order as Evaluate,
// building a fully parenthesized infix string instead of a value: each
// operator token combines the two most recent fragments as
// "(left SYM right)". Operands render as integers with no decimal point.
//
// Example output: ((9 * 8) + (76 / 4)).
//
// Contracts mirror Evaluate's; a structurally invalid shape returns the
// empty string rather than an error, since Format is only ever invoked on
// combinations Evaluate already accepted.
//
// Complexity: O(ShapeLen) stack steps; string building is O(total length).
func Format(shape []Token, operands []float64, ops []Op) string {
	var (
		stack   [NumOperands]string // fragment stack, same discipline as Evaluate
		sp      int                 // stack pointer
		nextNum int                 // next unused operand
		nextOp  int                 // next unused operator
		i       int                 // token cursor
	)

	for i = 0; i < len(shape); i++ {
		switch shape[i] {
		case TokOperand:
			if nextNum >= len(operands) || sp >= NumOperands {
				return ""
			}
			// Operands are exact integers; render without a decimal point.
			stack[sp] = strconv.FormatFloat(operands[nextNum], 'f', 0, 64)
			sp++
			nextNum++

		case TokOperator:
			if sp < 2 || nextOp >= len(ops) {
				return ""
			}
			right := stack[sp-1]
			left := stack[sp-2]
			sp -= 2

			stack[sp] = "(" + left + " " + string(ops[nextOp].Symbol()) + " " + right + ")"
			sp++
			nextOp++

		default:
			return ""
		}
	}

	if sp != 1 {
		return ""
	}

	return stack[0]
}
