//go:build !amd64 && !arm64

package kernels

import (
	_ "github.com/cwbudde/algo-bench/internal/kernels/arch/generic" // register generic variant
	_ "github.com/cwbudde/algo-bench/internal/kernels/registry"     // initialize variant registry
)
