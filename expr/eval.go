// Package expr - the stack-based postfix evaluator.
//
// This is the innermost function of the whole search: it runs once per
// (permutation, split, ordering, shape) combination, several billion times
// in an exhaustive run. It therefore allocates nothing, calls nothing, and
// fails only through the two sentinels in types.go.
package expr

// Evaluate walks shape's tokens over an explicit value stack of capacity
// NumOperands. Operand tokens push the next unused operand in order.
// Operator tokens pop the two most recent values (later push = right-hand
// side), consume the next unused operator from ops in shape encounter
// order, apply it, and push the result.
//
// Contracts:
//   - shape has NumOperands operand and NumOperators operator tokens and is
//     stack-safe (never pops below two values); tables.New guarantees this.
//   - len(operands) == NumOperands, len(ops) == NumOperators.
//
// Errors:
//   - ErrDivisionByZero when a division's right-hand value is zero — the
//     value may be an original operand or a computed intermediate (e.g. the
//     result of x-x); either way the combination is excluded, not fatal.
//   - ErrMalformedExpression on any structural mismatch (defensive only).
//
// Complexity: O(ShapeLen) time, O(1) space, zero allocations.
func Evaluate(shape []Token, operands []float64, ops []Op) (float64, error) {
	var (
		stack   [NumOperands]float64 // value stack; 5 is the worst case (all operands pushed)
		sp      int                  // stack pointer: next free slot
		nextNum int                  // next unused operand
		nextOp  int                  // next unused operator
		l, r    float64              // popped left/right operands
		res     float64              // current operator result
		i       int                  // token cursor
	)

	for i = 0; i < len(shape); i++ {
		switch shape[i] {
		case TokOperand:
			if nextNum >= len(operands) || sp >= NumOperands {
				return 0, ErrMalformedExpression
			}
			stack[sp] = operands[nextNum]
			sp++
			nextNum++

		case TokOperator:
			if sp < 2 || nextOp >= len(ops) {
				return 0, ErrMalformedExpression
			}
			r = stack[sp-1] // later push = right-hand side
			l = stack[sp-2]
			sp -= 2

			switch ops[nextOp] {
			case OpAdd:
				res = l + r
			case OpSub:
				res = l - r
			case OpMul:
				res = l * r
			case OpDiv:
				if r == 0 {
					return 0, ErrDivisionByZero
				}
				res = l / r
			default:
				return 0, ErrMalformedExpression
			}
			nextOp++

			stack[sp] = res
			sp++

		default:
			return 0, ErrMalformedExpression
		}
	}

	// A well-formed combination leaves exactly one value.
	if sp != 1 || nextNum != len(operands) || nextOp != len(ops) {
		return 0, ErrMalformedExpression
	}

	return stack[0], nil
}
