package generic

import (
	"github.com/cwbudde/algo-bench/internal/cpu"
	"github.com/cwbudde/algo-bench/internal/kernels/registry"
)

// init registers the generic (pure Go, scalar) variant with the kernel
// registry.
//
// The generic variant serves as the baseline fallback when no SIMD variant
// is available or when ForceGeneric is enabled, and as the reference the
// accelerated variants are verified against.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		MatMul:      MatMul,
		Sum:         Sum,
		HashUpdate:  HashUpdate,
		CountSubstr: CountSubstr,
		CopyBytes:   CopyBytes,
		PolyEval:    PolyEval,
	})
}
