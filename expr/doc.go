// Package expr implements the arithmetic core of nineop: building the five
// operands from a digit permutation and a split, evaluating one postfix
// (RPN) combination on an explicit value stack, and rendering a winning
// combination as a fully parenthesized infix string.
//
// The expression form is fixed:
//
//   - 5 operands, produced by cutting a 9-digit permutation into five
//     contiguous groups (most-significant digit first);
//   - 4 operators — add, subtract, multiply, divide — each used exactly once;
//   - a 9-token postfix shape with 5 operand and 4 operator tokens.
//
// Operand tokens consume operands left to right; operator tokens consume
// operators in the order the tokens are encountered in the shape. Division
// whose right-hand side is zero aborts that single combination with
// ErrDivisionByZero — an expected outcome, not a fault.
//
// All functions are pure and deterministic: identical inputs always yield
// identical outputs, across repeated runs and across goroutines.
//
// Complexity: every operation in this package is O(ShapeLen) time with no
// hidden allocations on the evaluation path.
package expr
