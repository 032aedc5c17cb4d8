// Package nineop answers one fixed question: take the digits 1–9, each used
// exactly once, cut them (in some order) into five decimal numbers, combine
// those numbers with the four operators + - * / (each used exactly once) in
// every syntactically valid expression tree — what is the largest value you
// can reach, and which expression reaches it?
//
// 🚀 What is nineop?
//
//	A small, focused search engine that enumerates the complete space:
//		• 362,880 digit permutations × 70 splits × 24 operator orderings × 14 shapes
//		• a stack-based postfix evaluator with a division-by-zero guard
//		• a parallel coordinator with dynamic chunk claiming and a max-reduction
//		• an optional "fast mode" heuristic that trades completeness for speed
//
// ✨ Why this shape?
//
//   - Precomputed tables – the four finite generator sets are built once,
//     validated, and shared read-only across all workers
//   - Strict sentinels – every failure mode is a named error; division by
//     zero is an expected, silently excluded outcome, never a crash
//   - No global state – the search returns an explicit Result; per-worker
//     bests are merged by a single reducing step
//
// Everything is organized under three subpackages plus a thin driver:
//
//	tables/     — permutation, split, operator-ordering and RPN-shape generators
//	expr/       — operand construction, postfix evaluation, infix formatting
//	search/     — the parallel coordinator, fast-mode filter and reduction
//	cmd/nineop/ — command-line driver: flags, timing, final print
//
// Quick taste:
//
//	t, err := tables.New()
//	if err != nil {
//	    log.Fatal(err) // table invariant breach: the search space is wrong
//	}
//	res, err := search.Run(t, 0, tables.NumPerms)
//	fmt.Printf("%.0f = %s\n", res.Value, res.Expression)
//
//	go get github.com/katalvlaran/nineop
package nineop
