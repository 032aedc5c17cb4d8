// Command nineop runs the digit-expression maximization search and prints
// the best value found together with one expression attaining it.
//
// Usage:
//
//	go run ./cmd/nineop              # exhaustive search, all CPUs
//	go run ./cmd/nineop --fast       # heuristic mode: only five-digit-operand pairs
//	go run ./cmd/nineop --workers 4  # cap the worker pool
//
// Exhaustive mode examines all ~8.5 billion combinations; fast mode trades
// completeness for a large speedup and may under-report the true maximum.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nineop/search"
	"github.com/katalvlaran/nineop/tables"
)

var (
	fastMode bool // heuristic pruning on/off
	workers  int  // worker pool size
	chunk    int  // permutations per claimed work unit
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	root := &cobra.Command{
		Use:          "nineop",
		Short:        "Maximize an arithmetic expression built from the digits 1-9",
		Long:         "Partitions the digits 1-9 into five numbers, combines them with + - * / (each used once) in every valid expression tree, and reports the maximum value.",
		SilenceUsage: true,
		RunE:         run,
	}
	root.Flags().BoolVar(&fastMode, "fast", false, "heuristic mode: only check partitions with a five-digit operand (incomplete, may under-report)")
	root.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "parallel worker count")
	root.Flags().IntVar(&chunk, "chunk", search.DefaultChunkSize, "permutations claimed per work unit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	log.Info().Msg("initializing lookup tables")

	t, err := tables.New()
	if err != nil {
		// A table invariant breach means the search space itself is wrong;
		// continuing would silently mis-count it.
		log.Fatal().Err(err).Msg("table initialization failed")
	}
	log.Info().
		Int("permutations", len(t.Perms)).
		Int("splits", len(t.Splits)).
		Int("operator_orderings", len(t.OpOrders)).
		Int("shapes", len(t.Shapes)).
		Msg("tables ready")

	mode := "exhaustive"
	opts := []search.Option{search.WithWorkers(workers), search.WithChunkSize(chunk)}
	if fastMode {
		mode = "fast (heuristic, incomplete)"
		opts = append(opts, search.WithFastMode())
	}
	log.Info().Str("mode", mode).Int("workers", workers).Msg("starting search")

	start := time.Now()
	res, err := search.Run(t, 0, len(t.Perms), opts...)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	log.Info().
		Uint64("combinations_evaluated", res.Evaluated).
		Dur("elapsed", elapsed).
		Msg("search complete")

	fmt.Printf("Max Value: %.0f\n", res.Value)
	fmt.Printf("Expression: %s\n", res.Expression)
	fmt.Printf("Time Taken: %.4f seconds\n", elapsed.Seconds())

	return nil
}
