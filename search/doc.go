// Package search drives the nineop enumeration in parallel and reduces the
// per-worker results to one global maximum.
//
// Run iterates permutation × split × operator-ordering × shape over a
// validated tables.Tables, with the permutation index range partitioned
// across a fixed pool of workers by dynamic chunk claiming: each worker
// repeatedly claims the next unclaimed chunk (default 1000 permutations)
// from an atomic cursor, which balances load even when fast mode makes
// per-permutation cost wildly uneven. Workers keep a purely local best and
// send it on a channel once their work is exhausted; a single reducing loop
// computes the strict-greater maximum. No global mutable state, no locks in
// worker bodies, no cancellation — the search always runs to completion.
//
// Fast mode (Options.FastMode) is an explicitly incomplete heuristic: it
// skips every (permutation, split) pair whose five operands include no
// five-digit number, on the unproven claim that the true optimum always
// contains one. It may under-report the maximum and must never be treated
// as exhaustive; the exhaustive default examines all ~8.5 billion
// combinations.
//
// Tie policy: only strictly greater values replace a best, so among equal
// maxima the expression reported is whichever discovery happened to run
// first under the parallel schedule. It is not deterministic across runs or
// worker counts; the maximum value itself is.
package search
