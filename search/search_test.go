package search_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nineop/expr"
	"github.com/katalvlaran/nineop/search"
	"github.com/katalvlaran/nineop/tables"
)

// Shorthand token constants for shape literals.
const (
	n = expr.TokOperand
	x = expr.TokOperator
)

// leftAssoc is ((((a op b) op c) op d) op e).
var leftAssoc = []expr.Token{n, n, x, n, x, n, x, n, x}

// foldRight pushes all operands and folds from the deepest pair:
// (a op (b op (c op (d op e)))).
var foldRight = []expr.Token{n, n, n, n, n, x, x, x, x}

// fullTables builds the real table set once for the whole test binary.
var (
	fullOnce   sync.Once
	fullTabs   *tables.Tables
	fullTabErr error
)

func realTables(t *testing.T) *tables.Tables {
	t.Helper()

	fullOnce.Do(func() { fullTabs, fullTabErr = tables.New() })
	require.NoError(t, fullTabErr)

	return fullTabs
}

// referenceSearch is the independent, unoptimized quadruple-nested
// implementation the coordinator is checked against: sequential loops, no
// chunking, no workers, same strict-greater tie policy.
func referenceSearch(tb *tables.Tables, lo, hi int, fast bool) search.Result {
	res := search.Result{Value: math.Inf(-1)}
	for pi := lo; pi < hi; pi++ {
		for _, split := range tb.Splits {
			operands := expr.BuildOperands(tb.Perms[pi], split, nil)
			if fast && !search.HasFiveDigitOperand(operands) {
				continue
			}
			for _, ops := range tb.OpOrders {
				for _, shape := range tb.Shapes {
					v, err := expr.Evaluate(shape, operands, ops)
					if err != nil {
						continue
					}
					res.Evaluated++
					if v > res.Value {
						res.Value = v
						res.Expression = expr.Format(shape, operands, ops)
					}
				}
			}
		}
	}

	return res
}

// TestRun_InputValidation covers every pre-flight sentinel.
func TestRun_InputValidation(t *testing.T) {
	tb := &tables.Tables{Perms: [][]uint8{{1, 2, 3, 4, 5, 6, 7, 8, 9}}}

	_, err := search.Run(nil, 0, 0)
	assert.ErrorIs(t, err, search.ErrNilTables)

	_, err = search.Run(tb, -1, 1)
	assert.ErrorIs(t, err, search.ErrBadRange)

	_, err = search.Run(tb, 0, 2)
	assert.ErrorIs(t, err, search.ErrBadRange, "hi beyond the permutation table")

	_, err = search.Run(tb, 1, 0)
	assert.ErrorIs(t, err, search.ErrBadRange, "inverted range")

	_, err = search.Run(tb, 0, 1, search.WithWorkers(0))
	assert.ErrorIs(t, err, search.ErrBadWorkers)

	_, err = search.Run(tb, 0, 1, search.WithChunkSize(-5))
	assert.ErrorIs(t, err, search.ErrBadChunkSize)
}

// TestRun_EmptyRange: nothing to scan yields -Inf and no expression.
func TestRun_EmptyRange(t *testing.T) {
	tb := &tables.Tables{Perms: [][]uint8{{1, 2, 3, 4, 5, 6, 7, 8, 9}}}

	res, err := search.Run(tb, 0, 0)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Value, -1))
	assert.Empty(t, res.Expression)
	assert.Zero(t, res.Evaluated)
}

// TestRun_ClosedUniverse fixes a tiny hand-computable universe — one
// permutation, one split, two orderings, two shapes — and demands the
// coordinator reproduce the hand-worked maximum exactly.
//
// Operands are 1, 2, 3, 4, 56789. The four combinations evaluate to:
//
//	left-assoc, (+,*,-,/): (((1+2)*3)-4)/56789  ≈  8.8e-5
//	left-assoc, (*,+,/,-): (((1*2)+3)/4)-56789  ≈ -56787.75
//	fold-right, (+,*,-,/): 1/(2-(3*(4+56789))) ≈ -5.9e-6
//	fold-right, (*,+,/,-): 1-(2/(3+(4*56789))) ≈  0.9999912   ← maximum
func TestRun_ClosedUniverse(t *testing.T) {
	tb := &tables.Tables{
		Perms:  [][]uint8{{1, 2, 3, 4, 5, 6, 7, 8, 9}},
		Splits: [][]int{{1, 2, 3, 4}},
		OpOrders: [][]expr.Op{
			{expr.OpAdd, expr.OpMul, expr.OpSub, expr.OpDiv},
			{expr.OpMul, expr.OpAdd, expr.OpDiv, expr.OpSub},
		},
		Shapes: [][]expr.Token{leftAssoc, foldRight},
	}

	res, err := search.Run(tb, 0, 1, search.WithWorkers(2), search.WithChunkSize(1))
	require.NoError(t, err)

	// Recompute the winning value with the same float64 operation sequence.
	den := 3 + 4*float64(56789)
	want := 1 - 2/den

	assert.Equal(t, want, res.Value)
	assert.Equal(t, "(1 - (2 / (3 + (4 * 56789))))", res.Expression)
	assert.Equal(t, uint64(4), res.Evaluated, "all four combinations evaluate cleanly")
}

// TestRun_DivisionByZeroExcluded fixes a universe whose only combination
// divides by a computed zero: the coordinator must exclude it silently and
// report an empty result, not an error.
func TestRun_DivisionByZeroExcluded(t *testing.T) {
	tb := &tables.Tables{
		// Operands 4, 56789, 1, 2, 3.
		Perms:  [][]uint8{{4, 5, 6, 7, 8, 9, 1, 2, 3}},
		Splits: [][]int{{1, 6, 7, 8}},
		// ((4 * 56789) / ((1 + 2) - 3)): right-hand side of the divide is 0.
		OpOrders: [][]expr.Op{{expr.OpMul, expr.OpAdd, expr.OpSub, expr.OpDiv}},
		Shapes:   [][]expr.Token{{n, n, x, n, n, x, n, x, x}},
	}

	res, err := search.Run(tb, 0, 1)
	require.NoError(t, err)
	assert.True(t, math.IsInf(res.Value, -1), "the only combination must be excluded")
	assert.Empty(t, res.Expression)
	assert.Zero(t, res.Evaluated)
}

// TestRun_MatchesReference_Smoke compares the parallel coordinator against
// the unoptimized reference over the first 100 permutations, exhaustive
// mode: maximum value and evaluated count must match exactly, and a
// single-worker run (which visits combinations in reference order) must
// also report the identical winning expression.
func TestRun_MatchesReference_Smoke(t *testing.T) {
	tb := realTables(t)
	want := referenceSearch(tb, 0, 100, false)

	res, err := search.Run(tb, 0, 100, search.WithChunkSize(7))
	require.NoError(t, err)
	assert.Equal(t, want.Value, res.Value)
	assert.Equal(t, want.Evaluated, res.Evaluated)

	res, err = search.Run(tb, 0, 100, search.WithWorkers(1), search.WithChunkSize(7))
	require.NoError(t, err)
	assert.Equal(t, want.Value, res.Value)
	assert.Equal(t, want.Expression, res.Expression, "one worker visits in reference order")
}

// TestRun_FastModeNeverExceedsExhaustive asserts the soundness direction of
// the heuristic: pruning only removes candidates, so the fast-mode maximum
// over any subrange is ≤ the exhaustive maximum over the same subrange.
// (Fast mode may still under-report; that is its documented trade-off.)
func TestRun_FastModeNeverExceedsExhaustive(t *testing.T) {
	tb := realTables(t)

	exhaustive, err := search.Run(tb, 0, 200)
	require.NoError(t, err)

	fast, err := search.Run(tb, 0, 200, search.WithFastMode())
	require.NoError(t, err)

	assert.LessOrEqual(t, fast.Value, exhaustive.Value)
	assert.Less(t, fast.Evaluated, exhaustive.Evaluated, "the filter must actually prune")
}

// TestRun_DeterministicAcrossWorkerCounts: the maximum value and the
// evaluated count are schedule-independent even though the tied-expression
// choice is not.
func TestRun_DeterministicAcrossWorkerCounts(t *testing.T) {
	tb := realTables(t)

	base, err := search.Run(tb, 40, 140, search.WithWorkers(1))
	require.NoError(t, err)

	for _, workers := range []int{2, 3, 8} {
		res, err := search.Run(tb, 40, 140, search.WithWorkers(workers), search.WithChunkSize(11))
		require.NoError(t, err)
		assert.Equal(t, base.Value, res.Value, "workers=%d", workers)
		assert.Equal(t, base.Evaluated, res.Evaluated, "workers=%d", workers)
	}
}

// TestRun_FullSpace_FastMode runs fast mode over the complete permutation
// table with two different schedules and demands identical maxima. Skipped
// under -short: even pruned, this scans hundreds of millions of
// combinations.
func TestRun_FullSpace_FastMode(t *testing.T) {
	if testing.Short() {
		t.Skip("full-space search is expensive; run without -short")
	}
	tb := realTables(t)

	a, err := search.Run(tb, 0, tables.NumPerms, search.WithFastMode())
	require.NoError(t, err)

	b, err := search.Run(tb, 0, tables.NumPerms, search.WithFastMode(), search.WithWorkers(2), search.WithChunkSize(333))
	require.NoError(t, err)

	assert.Equal(t, a.Value, b.Value)
	assert.Equal(t, a.Evaluated, b.Evaluated)
	assert.NotEmpty(t, a.Expression)
}
