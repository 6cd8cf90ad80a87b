package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

const reportRail = "========================================"

// WriteText renders the report in the sectioned format of the original
// suite: a host banner, one section per kernel, and a closing line.
func WriteText(w io.Writer, rep Report) {
	fmt.Fprintln(w, reportRail)
	fmt.Fprintln(w, "  Compute Kernel Benchmark Suite")
	fmt.Fprintf(w, "  %s/%s, features: %s\n", rep.System.OS, rep.System.Arch, rep.System.Features)
	fmt.Fprintf(w, "  implementation: %s\n", rep.System.Implementation)
	fmt.Fprintln(w, reportRail)

	for _, res := range rep.Results {
		switch res.Kernel {
		case KernelMatrix:
			fmt.Fprintf(w, "\n=== Matrix Multiplication Benchmark ===\n")
			fmt.Fprintf(w, "Matrix size: %dx%d\n", rep.Config.MatrixSize, rep.Config.MatrixSize)
			fmt.Fprintf(w, "Time: %s\n", formatMS(res.Elapsed))
			fmt.Fprintf(w, "Result sum: %.6g\n", res.Checksum)

		case KernelHash:
			fmt.Fprintf(w, "\n=== Hashing Benchmark ===\n")
			fmt.Fprintf(w, "Data size: %d KB\n", res.Bytes/1024)
			fmt.Fprintf(w, "Time: %s\n", formatMS(res.Elapsed))
			fmt.Fprintf(w, "Hash: %s\n", res.Hash)

		case KernelSearch:
			fmt.Fprintf(w, "\n=== String Search Benchmark ===\n")
			fmt.Fprintf(w, "Text size: %d characters\n", res.Bytes)
			fmt.Fprintf(w, "Pattern: %q\n", rep.Config.SearchPattern)
			fmt.Fprintf(w, "Occurrences found: %d\n", res.Matches)
			fmt.Fprintf(w, "Time: %s\n", formatMS(res.Elapsed))

		case KernelCopy:
			fmt.Fprintf(w, "\n=== Memory Operations Benchmark ===\n")
			fmt.Fprintf(w, "Memory size: %d MB\n", res.Bytes/(1<<20))
			fmt.Fprintf(w, "Time: %s\n", formatMS(res.Elapsed))
			fmt.Fprintf(w, "Throughput: %.2f MB/s\n", res.MBPerSec)
			if res.Verified {
				fmt.Fprintf(w, "Verify: ok\n")
			} else {
				fmt.Fprintf(w, "Verify: FAILED\n")
			}

		case KernelPoly:
			fmt.Fprintf(w, "\n=== Polynomial Evaluation Benchmark ===\n")
			fmt.Fprintf(w, "Iterations: %d\n", res.Iterations)
			fmt.Fprintf(w, "Time: %s\n", formatMS(res.Elapsed))
			fmt.Fprintf(w, "Result sum: %.6g\n", res.Checksum)
		}
	}

	fmt.Fprintf(w, "\n%s\n", reportRail)
	fmt.Fprintln(w, "  All benchmarks completed!")
	fmt.Fprintln(w, reportRail)
}

// WriteJSON renders the report as indented JSON.
func WriteJSON(w io.Writer, rep Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func formatMS(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d.Nanoseconds())/1e6)
}
