// Command algobench runs the compute kernel benchmark suite: dense matrix
// multiplication, DJB2 hashing, substring search, memory copy, and
// polynomial evaluation, each dispatched to the best implementation
// variant for the current CPU.
//
// Usage:
//
//	algobench [flags]
//
// Without flags it runs the original fixed-size workload (200x200 matrix,
// 10 MiB hash input, 100000 search repetitions, 50 MiB copy, ten million
// polynomial evaluations) and prints a sectioned text report.
//
// Examples:
//
//	algobench
//	algobench -matrix 400 -poly-iters 1000000
//	algobench -generic -json
//	algobench -list
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-bench/bench"
	"github.com/cwbudde/algo-bench/internal/kernels"
)

func main() {
	matrix := flag.Int("matrix", 200, "square matrix dimension")
	hashBytes := flag.Int("hash-bytes", 10<<20, "hash input size in bytes")
	searchRepeats := flag.Int("search-repeats", 100000, "pangram repetitions in the search text")
	copyBytes := flag.Int("copy-bytes", 50<<20, "copy size in bytes")
	polyIters := flag.Int("poly-iters", 10000000, "polynomial evaluations")
	generic := flag.Bool("generic", false, "force the scalar implementation")
	jsonOut := flag.Bool("json", false, "write the report as JSON")
	list := flag.Bool("list", false, "list registered implementation variants")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: algobench [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs the compute kernel benchmark suite (matrix multiply, DJB2 hash,\n")
		fmt.Fprintf(os.Stderr, "substring search, memory copy, polynomial evaluation).\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  algobench\n")
		fmt.Fprintf(os.Stderr, "  algobench -matrix 400 -poly-iters 1000000\n")
		fmt.Fprintf(os.Stderr, "  algobench -generic -json\n")
		fmt.Fprintf(os.Stderr, "  algobench -list\n")
	}
	flag.Parse()

	// Building the runner first applies -generic before any dispatch, so
	// -list reflects the forced selection too.
	runner := bench.NewRunner(bench.Config{
		MatrixSize:     *matrix,
		HashBytes:      *hashBytes,
		SearchRepeats:  *searchRepeats,
		CopyBytes:      *copyBytes,
		PolyIterations: *polyIters,
		ForceGeneric:   *generic,
	})

	if *list {
		printVariants()
		return
	}

	rep, err := runner.RunAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *jsonOut {
		if err := bench.WriteJSON(os.Stdout, rep); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	bench.WriteText(os.Stdout, rep)
}

func printVariants() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Variant\tSIMD Level\tPriority\tSelected\n")
	fmt.Fprintf(tw, "-------\t----------\t--------\t--------\n")
	for _, v := range kernels.Variants() {
		selected := ""
		if v.Selected {
			selected = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", v.Name, v.Level, v.Priority, selected)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
