//go:build amd64 && !purego

package kernels

import (
	_ "github.com/cwbudde/algo-bench/internal/kernels/arch/amd64/sse2" // register SSE2 variant
	_ "github.com/cwbudde/algo-bench/internal/kernels/arch/generic"    // register generic variant
	_ "github.com/cwbudde/algo-bench/internal/kernels/registry"        // initialize variant registry
)
