//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-bench/internal/cpu"
	"github.com/cwbudde/algo-bench/internal/kernels/registry"
)

// init registers the NEON-shaped variant with the kernel registry.
//
// NEON (ARM Advanced SIMD) is mandatory on ARMv8, so this variant is
// available on all arm64 CPUs. The kernels process 128-bit blocks in the
// original NEON kernel's lane order, with fused multiply-add in the matrix
// kernel.
//
// Priority: 15 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,

		MatMul:      MatMul,
		Sum:         Sum,
		HashUpdate:  HashUpdate,
		CountSubstr: CountSubstr,
		CopyBytes:   CopyBytes,
		PolyEval:    PolyEval,
	})
}
