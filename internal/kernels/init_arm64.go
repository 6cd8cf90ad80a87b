//go:build arm64 && !purego

package kernels

import (
	_ "github.com/cwbudde/algo-bench/internal/kernels/arch/arm64/neon" // register NEON variant
	_ "github.com/cwbudde/algo-bench/internal/kernels/arch/generic"    // register generic variant
	_ "github.com/cwbudde/algo-bench/internal/kernels/registry"        // initialize variant registry
)
