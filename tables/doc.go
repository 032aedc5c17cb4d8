// Package tables builds the four finite lookup tables that define the
// nineop search space:
//
//   - 362,880 permutations of the digits 1–9 (9!),
//   - 70 splits of 9 ordered positions into 5 nonempty groups (C(8,4)),
//   - 24 orderings of the four operators (4!),
//   - 14 stack-safe postfix shapes for 5 operands / 4 operators (Catalan).
//
// New builds all four sequentially, then validates every structural
// invariant before returning. The cardinalities above are not heuristics —
// they are exact, and any mismatch means the search space is wrong, so New
// refuses to hand out a malformed table set. A Tables value is immutable
// after construction and safe to share across any number of goroutines
// without synchronization.
//
// Use this package once at startup; everything downstream (expr, search)
// treats the tables as read-only ground truth.
package tables
