package bench

import (
	"runtime"

	"github.com/cwbudde/algo-bench/internal/cpu"
	"github.com/cwbudde/algo-bench/internal/kernels"
)

// SystemInfo describes the host and the dispatch selection for a run.
type SystemInfo struct {
	OS             string `json:"os"`
	Arch           string `json:"arch"`
	Features       string `json:"features"`
	Implementation string `json:"implementation"`
	SIMDLevel      string `json:"simd_level"`
}

// CollectSystemInfo snapshots the host description and the currently
// selected implementation variant.
func CollectSystemInfo() SystemInfo {
	return SystemInfo{
		OS:             runtime.GOOS,
		Arch:           runtime.GOARCH,
		Features:       cpu.DetectFeatures().String(),
		Implementation: kernels.ImplName(),
		SIMDLevel:      kernels.Level().String(),
	}
}
