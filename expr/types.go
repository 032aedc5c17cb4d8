// Package expr - shared types, structural constants and sentinel errors.
//
// Design principles:
//   - Strict sentinels: only errors declared here; no fmt.Errorf on hot paths.
//   - Fixed-form expressions: the 9/5/4 structure is a compile-time constant,
//     not a runtime parameter.
//   - float64 arithmetic throughout: operands are exact integers ≤ 99999 and
//     only division introduces fractions.
package expr

import "errors"

// Structural constants of the expression form. These are fixed by the
// problem statement (digits 1–9, five operands, four operators) and every
// table, stack and loop in the module is sized from them.
const (
	// NumDigits is the count of distinct digits (1..9) in every permutation.
	NumDigits = 9

	// NumOperands is the count of numbers formed from one permutation+split.
	NumOperands = 5

	// NumOperators is the count of operators; each is used exactly once.
	NumOperators = 4

	// ShapeLen is the token length of a postfix shape:
	// NumOperands operand tokens + NumOperators operator tokens.
	ShapeLen = NumOperands + NumOperators
)

// Sentinel errors returned by the evaluator.
var (
	// ErrDivisionByZero reports that an operator token applied division with
	// a zero right-hand value. It is a recoverable, expected signal: the
	// combination is simply excluded from maximum consideration. Callers
	// classify it with errors.Is and must not log or surface it.
	ErrDivisionByZero = errors.New("expr: division by zero")

	// ErrMalformedExpression reports a shape/operand/operator mismatch
	// (stack underflow, token surplus, unknown token or operator).
	// Unreachable for tables that passed tables.New validation; kept as a
	// defensive guard for hand-built inputs.
	ErrMalformedExpression = errors.New("expr: malformed expression")
)

// Token classifies one position of a postfix shape.
type Token uint8

const (
	// TokOperand marks a position that pushes the next unused operand.
	TokOperand Token = iota

	// TokOperator marks a position that pops two values and applies the
	// next unused operator.
	TokOperator
)

// Op identifies one of the four arithmetic operators.
type Op uint8

const (
	OpAdd Op = iota // addition       '+'
	OpSub           // subtraction    '-'
	OpMul           // multiplication '*'
	OpDiv           // division       '/'
)

// opSymbols maps Op to its ASCII rendering; indexed by Op value.
var opSymbols = [NumOperators]byte{'+', '-', '*', '/'}

// Symbol returns the single ASCII character for op.
// Undefined Op values fall back to '?' rather than panicking.
func (o Op) Symbol() byte {
	if int(o) >= len(opSymbols) {
		return '?'
	}

	return opSymbols[o]
}

// String implements fmt.Stringer for logs and test diagnostics.
func (o Op) String() string { return string(o.Symbol()) }
