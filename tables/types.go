// Package tables - table container, cardinality constants and sentinels.
package tables

import (
	"errors"

	"github.com/katalvlaran/nineop/expr"
)

// Exact cardinalities of the four tables. New enforces these with equality,
// not bounds: a generator producing any other count has a bug that would
// silently under- or over-count the search space.
const (
	// NumPerms is 9! — all orderings of the digits 1..9.
	NumPerms = 362880

	// NumSplits is C(8,4) — all choices of 4 cut points among 8 gaps.
	NumSplits = 70

	// NumOpOrders is 4! — all orderings of the four distinct operators.
	NumOpOrders = 24

	// NumShapes is the Catalan number C4 — all stack-safe postfix shapes
	// with 5 operand and 4 operator tokens.
	NumShapes = 14
)

// Sentinel errors returned by New / validate.
// All of them are unrecoverable: a caller must not run a search over tables
// that failed validation.
var (
	// ErrTableCardinality reports that a generator produced a table whose
	// size differs from its exact expected count.
	ErrTableCardinality = errors.New("tables: table cardinality mismatch")

	// ErrMalformedPermutation reports a permutation that is not a bijection
	// onto the digits 1..9.
	ErrMalformedPermutation = errors.New("tables: malformed digit permutation")

	// ErrMalformedSplit reports cut points that are not strictly increasing
	// within [1,8].
	ErrMalformedSplit = errors.New("tables: malformed split")

	// ErrMalformedOpOrder reports an ordering that repeats or omits one of
	// the four operators.
	ErrMalformedOpOrder = errors.New("tables: malformed operator ordering")

	// ErrMalformedShape reports a postfix shape with wrong token counts or
	// one that underflows the value stack when token-walked.
	ErrMalformedShape = errors.New("tables: malformed RPN shape")
)

// Tables holds the four immutable lookup tables. Built once by New,
// validated, and thereafter shared read-only across all search workers.
type Tables struct {
	// Perms holds every ordering of the digits 1..9; len == NumPerms,
	// each entry of length expr.NumDigits. Enumeration order is not
	// meaningful and must not be relied upon.
	Perms [][]uint8

	// Splits holds every strictly increasing 4-tuple of cut points in
	// [1,8]; len == NumSplits. Together with the implicit boundaries 0 and
	// 9, each tuple defines five nonempty contiguous digit groups.
	Splits [][]int

	// OpOrders holds every ordering of the four operators, each used
	// exactly once; len == NumOpOrders.
	OpOrders [][]expr.Op

	// Shapes holds every valid postfix token shape; len == NumShapes,
	// each entry of length expr.ShapeLen with exactly expr.NumOperands
	// operand and expr.NumOperators operator tokens.
	Shapes [][]expr.Token
}
