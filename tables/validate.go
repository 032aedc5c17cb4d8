// Package tables - structural validation of freshly generated tables.
//
// Design principles:
//   - Deterministic, side-effect free checks; no logging, no panics.
//   - Strict sentinels: each table class maps to exactly one error.
//   - Exact cardinalities: equality, never ≥ or ≤.
//
// Validation runs once at startup, so clarity is preferred over speed; the
// full pass is O(total table size).
package tables

import "github.com/katalvlaran/nineop/expr"

// validate verifies every invariant of a table set:
//
//	Stage 1 - cardinalities match NumPerms/NumSplits/NumOpOrders/NumShapes.
//	Stage 2 - each permutation is a bijection onto the digits 1..9.
//	Stage 3 - each split is strictly increasing within [1, NumDigits-1].
//	Stage 4 - each ordering uses each of the four operators exactly once.
//	Stage 5 - each shape has exact token counts and never underflows a
//	          stack of capacity NumOperands when token-walked.
func validate(t *Tables) error {
	// Stage 1: exact cardinalities.
	if len(t.Perms) != NumPerms || len(t.Splits) != NumSplits ||
		len(t.OpOrders) != NumOpOrders || len(t.Shapes) != NumShapes {
		return ErrTableCardinality
	}

	// Stage 2: permutations.
	var seen [expr.NumDigits + 1]bool // digit presence, indexed 1..9
	for _, perm := range t.Perms {
		if len(perm) != expr.NumDigits {
			return ErrMalformedPermutation
		}
		seen = [expr.NumDigits + 1]bool{}
		for _, d := range perm {
			if d < 1 || d > expr.NumDigits || seen[d] {
				return ErrMalformedPermutation
			}
			seen[d] = true
		}
	}

	// Stage 3: splits.
	for _, split := range t.Splits {
		if err := validateSplit(split); err != nil {
			return err
		}
	}

	// Stage 4: operator orderings.
	var used [expr.NumOperators]bool
	for _, ord := range t.OpOrders {
		if len(ord) != expr.NumOperators {
			return ErrMalformedOpOrder
		}
		used = [expr.NumOperators]bool{}
		for _, op := range ord {
			if int(op) >= expr.NumOperators || used[op] {
				return ErrMalformedOpOrder
			}
			used[op] = true
		}
	}

	// Stage 5: shapes.
	for _, shape := range t.Shapes {
		if err := validateShape(shape); err != nil {
			return err
		}
	}

	return nil
}

// validateSplit checks one 4-tuple of cut points: strictly increasing,
// each within [1, NumDigits-1]. Together with the implicit 0 and NumDigits
// boundaries this guarantees five nonempty groups covering [0, NumDigits)
// with no gaps or overlaps.
func validateSplit(split []int) error {
	if len(split) != expr.NumOperators {
		return ErrMalformedSplit
	}

	prev := 0 // implicit left boundary
	for _, c := range split {
		if c <= prev || c > expr.NumDigits-1 {
			return ErrMalformedSplit
		}
		prev = c
	}

	return nil
}

// validateShape token-walks one postfix shape, tracking the operand surplus
// exactly as the evaluator's stack would: an operand pushes, an operator
// pops two and pushes one. The walk must end with exact token counts and a
// surplus of exactly 1 (one final result value).
func validateShape(shape []expr.Token) error {
	if len(shape) != expr.ShapeLen {
		return ErrMalformedShape
	}

	var (
		operands  int // operand tokens seen
		operators int // operator tokens seen
		surplus   int // stack depth after each token
	)
	for _, tok := range shape {
		switch tok {
		case expr.TokOperand:
			operands++
			surplus++
			if surplus > expr.NumOperands {
				return ErrMalformedShape
			}
		case expr.TokOperator:
			if surplus < 2 {
				return ErrMalformedShape // would pop an underfilled stack
			}
			operators++
			surplus--
		default:
			return ErrMalformedShape
		}
	}

	if operands != expr.NumOperands || operators != expr.NumOperators || surplus != 1 {
		return ErrMalformedShape
	}

	return nil
}
