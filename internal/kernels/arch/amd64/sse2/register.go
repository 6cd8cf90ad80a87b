//go:build amd64 && !purego

package sse2

import (
	"github.com/cwbudde/algo-bench/internal/cpu"
	"github.com/cwbudde/algo-bench/internal/kernels/registry"
)

// init registers the SSE2-shaped variant with the kernel registry.
//
// SSE2 is part of the x86-64 baseline, so this variant is available on all
// amd64 CPUs. The kernels process 128-bit blocks (two float64 lanes, sixteen
// bytes) in the original SSE2 kernel's lane order.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,

		MatMul:      MatMul,
		Sum:         Sum,
		HashUpdate:  HashUpdate,
		CountSubstr: CountSubstr,
		CopyBytes:   CopyBytes,
		PolyEval:    PolyEval,
	})
}
