// Package search - result type, options and sentinel errors.
package search

import (
	"errors"
	"runtime"
)

// DefaultChunkSize is the number of permutations a worker claims per work
// unit. Large enough to amortize cursor traffic, small enough to balance
// load under fast mode's highly variable per-permutation cost.
const DefaultChunkSize = 1000

// Sentinel errors returned by Run before any worker starts.
var (
	// ErrNilTables indicates a nil *tables.Tables was passed to Run.
	ErrNilTables = errors.New("search: tables are nil")

	// ErrBadRange indicates lo/hi do not describe a subrange of the
	// permutation table (need 0 ≤ lo ≤ hi ≤ len(Perms)).
	ErrBadRange = errors.New("search: permutation range out of bounds")

	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("search: worker count must be positive")

	// ErrBadChunkSize indicates a non-positive chunk size.
	ErrBadChunkSize = errors.New("search: chunk size must be positive")
)

// Result is the outcome of one search over a permutation range.
type Result struct {
	// Value is the maximum reached. Over an empty range, or a range where
	// every combination divided by zero, Value is -Inf and Expression is
	// empty.
	Value float64

	// Expression is the fully parenthesized infix form of one combination
	// attaining Value, e.g. ((9 * 8) + (76 / 4)). Among tied maxima the
	// choice is schedule-dependent; see the package comment.
	Expression string

	// Evaluated counts combinations that produced a value (division-by-zero
	// exclusions are not counted).
	Evaluated uint64
}

// Options configures one Run call.
//
// FastMode  – skip (permutation, split) pairs with no operand > 9999.
//
//	INCOMPLETE: may under-report the true maximum. Default false.
//
// Workers   – parallel worker count. Default runtime.NumCPU().
// ChunkSize – permutations claimed per work unit. Default DefaultChunkSize.
type Options struct {
	FastMode  bool
	Workers   int
	ChunkSize int
}

// Option is a functional option for configuring Run.
type Option func(*Options)

// WithFastMode enables the heuristic pruning filter. The search becomes
// explicitly incomplete: any (permutation, split) pair lacking a five-digit
// operand is skipped wholesale, trading exhaustiveness for a large speedup.
func WithFastMode() Option {
	return func(o *Options) { o.FastMode = true }
}

// WithWorkers sets the parallel worker count.
// Non-positive values cause Run to return ErrBadWorkers.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithChunkSize sets how many permutations a worker claims at a time.
// Non-positive values cause Run to return ErrBadChunkSize.
func WithChunkSize(n int) Option {
	return func(o *Options) { o.ChunkSize = n }
}

// DefaultOptions returns the Options Run starts from before applying
// functional overrides: exhaustive mode, one worker per CPU, chunks of
// DefaultChunkSize permutations.
func DefaultOptions() Options {
	return Options{
		FastMode:  false,
		Workers:   runtime.NumCPU(),
		ChunkSize: DefaultChunkSize,
	}
}
