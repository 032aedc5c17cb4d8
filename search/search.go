// Package search - the parallel coordinator.
//
// Design principles:
//   - No shared mutable state during the parallel phase: workers own their
//     local best and communicate it exactly once, over a channel.
//   - Structured reduction instead of a critical section: a single loop
//     folds worker bests into the Result with a strict-greater comparison.
//   - Hot-path discipline: the inner loop allocates nothing; the formatter
//     runs only on local improvement (cold path).
package search

import (
	"errors"
	"math"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/nineop/expr"
	"github.com/katalvlaran/nineop/tables"
)

// localBest is one worker's best discovery over the chunks it claimed.
type localBest struct {
	value      float64 // best value; -Inf until something evaluates
	expression string  // infix form of the best combination
	evaluated  uint64  // combinations that produced a value
}

// Run searches the permutation index subrange [lo, hi) of t for the maximum
// reachable expression value, returning it with one expression attaining it.
//
// The range is partitioned dynamically: an atomic cursor hands out chunks of
// Options.ChunkSize permutations and each worker loops claim→scan until the
// range is exhausted. Per permutation the worker scans every split (operands
// rebuilt once per pair, in a reused scratch slice), optionally prunes via
// HasFiveDigitOperand, then evaluates every operator ordering × shape.
// Division-by-zero combinations are silently excluded.
//
// Contracts:
//   - t must come from tables.New (validated); 0 ≤ lo ≤ hi ≤ len(t.Perms).
//   - An empty range yields Result{Value: -Inf}.
//   - With FastMode the result may under-report the true maximum of the
//     range; see the package comment.
//
// Errors: ErrNilTables, ErrBadRange, ErrBadWorkers, ErrBadChunkSize before
// any work starts; expr.ErrMalformedExpression from a worker only if t was
// hand-built and malformed.
//
// Complexity: O((hi-lo) · NumSplits · NumOpOrders · NumShapes · ShapeLen)
// in exhaustive mode, divided across Options.Workers.
func Run(t *tables.Tables, lo, hi int, opts ...Option) (Result, error) {
	// Stage 1: options.
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}

	// Stage 2: input validation, before spawning anything.
	if t == nil {
		return Result{}, ErrNilTables
	}
	if lo < 0 || hi > len(t.Perms) || lo > hi {
		return Result{}, ErrBadRange
	}
	if o.Workers <= 0 {
		return Result{}, ErrBadWorkers
	}
	if o.ChunkSize <= 0 {
		return Result{}, ErrBadChunkSize
	}

	// Stage 3: parallel scan. The cursor starts at lo; each Add claims the
	// next ChunkSize permutations. Buffering the channel by worker count
	// lets every worker deposit its best without waiting on the reducer.
	var (
		cursor atomic.Int64
		group  errgroup.Group
		bests  = make(chan localBest, o.Workers)
	)
	cursor.Store(int64(lo))

	for w := 0; w < o.Workers; w++ {
		group.Go(func() error {
			return worker(t, &cursor, hi, o, bests)
		})
	}

	// Close the channel once all workers are done, capturing their error.
	var workErr error
	go func() {
		workErr = group.Wait()
		close(bests)
	}()

	// Stage 4: reduction. Strictly-greater comparison: ties keep the first
	// arrival, which is schedule-dependent and deliberately unspecified.
	final := Result{Value: math.Inf(-1)}
	for b := range bests {
		final.Evaluated += b.evaluated
		if b.value > final.Value {
			final.Value = b.value
			final.Expression = b.expression
		}
	}
	if workErr != nil {
		return Result{}, workErr
	}

	return final, nil
}

// worker claims chunks from cursor until the range is exhausted, keeping a
// purely local best, and deposits it on bests exactly once. It touches no
// shared state besides the atomic cursor and the final channel send.
func worker(t *tables.Tables, cursor *atomic.Int64, hi int, o Options, bests chan<- localBest) error {
	var (
		best     = localBest{value: math.Inf(-1)}
		operands = make([]float64, expr.NumOperands) // scratch, reused per (perm, split)
		start    int                                 // first permutation of the claimed chunk
		end      int                                 // one past the last
		pi       int                                 // permutation index
		value    float64
		err      error
	)

	for {
		start = int(cursor.Add(int64(o.ChunkSize))) - o.ChunkSize
		if start >= hi {
			break
		}
		end = start + o.ChunkSize
		if end > hi {
			end = hi
		}

		for pi = start; pi < end; pi++ {
			perm := t.Perms[pi]
			for _, split := range t.Splits {
				operands = expr.BuildOperands(perm, split, operands)

				// Fast mode: no five-digit operand ⇒ skip the whole inner loop.
				if o.FastMode && !HasFiveDigitOperand(operands) {
					continue
				}

				for _, ops := range t.OpOrders {
					for _, shape := range t.Shapes {
						value, err = expr.Evaluate(shape, operands, ops)
						if err != nil {
							if errors.Is(err, expr.ErrDivisionByZero) {
								continue // expected; this combination is out
							}

							return err // malformed tables: abort the search
						}
						best.evaluated++

						if value > best.value {
							best.value = value
							// Cold path: rebuild the infix string only on improvement.
							best.expression = expr.Format(shape, operands, ops)
						}
					}
				}
			}
		}
	}

	bests <- best

	return nil
}
