// Package bench drives the five-kernel benchmark suite: it builds
// deterministic workloads, times each kernel through the public kernel
// packages, and renders text or JSON reports.
//
// Data generation happens outside the timed region; the timer brackets
// exactly one kernel invocation (or, for the polynomial kernel, the
// evaluation loop itself, matching the original workload shape).
package bench

import (
	"bytes"
	"fmt"
	"runtime"
	"time"

	"github.com/cwbudde/algo-bench/internal/cpu"
	"github.com/cwbudde/algo-bench/internal/kernels"
	"github.com/cwbudde/algo-bench/kernel/djb2"
	"github.com/cwbudde/algo-bench/kernel/matmul"
	"github.com/cwbudde/algo-bench/kernel/memcopy"
	"github.com/cwbudde/algo-bench/kernel/polyeval"
	"github.com/cwbudde/algo-bench/kernel/substr"
)

// Kernel names used in Result.Kernel and the JSON report.
const (
	KernelMatrix = "matmul"
	KernelHash   = "hash"
	KernelSearch = "search"
	KernelCopy   = "copy"
	KernelPoly   = "polyeval"
)

// Result captures one timed kernel run. Fields that do not apply to a
// kernel are left zero and omitted from JSON.
type Result struct {
	Kernel     string        `json:"kernel"`
	Elapsed    time.Duration `json:"elapsed_ns"`
	Bytes      int64         `json:"bytes,omitempty"`
	Iterations int64         `json:"iterations,omitempty"`
	Matches    int64         `json:"matches,omitempty"`
	Hash       string        `json:"hash,omitempty"`
	Checksum   float64       `json:"checksum,omitempty"`
	MBPerSec   float64       `json:"mb_per_sec,omitempty"`
	Verified   bool          `json:"verified,omitempty"`
}

// Report bundles one full run for rendering.
type Report struct {
	System  SystemInfo `json:"system"`
	Config  Config     `json:"config"`
	Results []Result   `json:"results"`
}

// Runner executes the kernel suite over one normalized Config.
type Runner struct {
	cfg Config
}

// NewRunner normalizes cfg and returns a runner for it. When
// cfg.ForceGeneric is set, the scalar variant is pinned for the whole
// process before the first dispatch.
func NewRunner(cfg Config) *Runner {
	cfg = normalizeConfig(cfg)
	if cfg.ForceGeneric {
		cpu.SetForcedFeatures(cpu.Features{
			ForceGeneric: true,
			Architecture: runtime.GOARCH,
		})
		kernels.Refresh()
	}
	return &Runner{cfg: cfg}
}

// Config returns the normalized configuration the runner executes.
func (r *Runner) Config() Config {
	return r.cfg
}

// RunAll executes the five kernels in the fixed order of the original
// suite (matrix, hash, search, copy, polynomial) and collects the report.
func (r *Runner) RunAll() (Report, error) {
	mat, err := r.RunMatrix()
	if err != nil {
		return Report{}, err
	}

	return Report{
		System: CollectSystemInfo(),
		Config: r.cfg,
		Results: []Result{
			mat,
			r.RunHash(),
			r.RunSearch(),
			r.RunCopy(),
			r.RunPolynomial(),
		},
	}, nil
}

// RunMatrix multiplies two MatrixSize x MatrixSize matrices filled with
// deterministic pseudo-random values and reports the element sum of the
// product as the checksum.
func (r *Runner) RunMatrix() (Result, error) {
	n := r.cfg.MatrixSize
	a := matmul.Matrix{Rows: n, Cols: n, Data: randomFloats(1, n*n)}
	b := matmul.Matrix{Rows: n, Cols: n, Data: randomFloats(2, n*n)}

	start := time.Now()
	c, err := matmul.Mul(a, b)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, fmt.Errorf("matrix multiply: %w", err)
	}

	return Result{
		Kernel:   KernelMatrix,
		Elapsed:  elapsed,
		Checksum: c.Sum(),
	}, nil
}

// RunHash hashes HashBytes of sequential data (byte i is i mod 256).
func (r *Runner) RunHash() Result {
	data := sequentialBytes(r.cfg.HashBytes)

	start := time.Now()
	h := djb2.Sum(data)
	elapsed := time.Since(start)

	return Result{
		Kernel:   KernelHash,
		Elapsed:  elapsed,
		Bytes:    int64(len(data)),
		Hash:     fmt.Sprintf("%#x", h),
		MBPerSec: throughput(len(data), elapsed),
	}
}

// RunSearch counts SearchPattern in SearchRepeats repetitions of the
// pangram text.
func (r *Runner) RunSearch() Result {
	text := searchInput(r.cfg.SearchRepeats)
	pattern := []byte(r.cfg.SearchPattern)

	start := time.Now()
	count := substr.Count(text, pattern)
	elapsed := time.Since(start)

	return Result{
		Kernel:  KernelSearch,
		Elapsed: elapsed,
		Bytes:   int64(len(text)),
		Matches: int64(count),
	}
}

// RunCopy copies CopyBytes of sequential data and verifies the
// destination afterwards, outside the timed region.
func (r *Runner) RunCopy() Result {
	src := sequentialBytes(r.cfg.CopyBytes)
	dst := make([]byte, len(src))

	start := time.Now()
	n := memcopy.Copy(dst, src)
	elapsed := time.Since(start)

	return Result{
		Kernel:   KernelCopy,
		Elapsed:  elapsed,
		Bytes:    int64(n),
		MBPerSec: throughput(n, elapsed),
		Verified: bytes.Equal(dst, src),
	}
}

// RunPolynomial evaluates the coefficient set at PolyIterations points
// x0 + i*step and reports the accumulated sum as the checksum.
func (r *Runner) RunPolynomial() Result {
	cfg := r.cfg

	start := time.Now()
	sum := 0.0
	for i := 0; i < cfg.PolyIterations; i++ {
		x := cfg.PolyX0 + float64(i)*cfg.PolyStep
		sum += polyeval.Eval(x, cfg.PolyCoeffs)
	}
	elapsed := time.Since(start)

	return Result{
		Kernel:     KernelPoly,
		Elapsed:    elapsed,
		Iterations: int64(cfg.PolyIterations),
		Checksum:   sum,
	}
}

func throughput(n int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(n) / (1 << 20) / elapsed.Seconds()
}
