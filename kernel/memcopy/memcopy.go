// Package memcopy copies byte buffers through the dispatched copy kernel.
//
// The scalar variant defers to the builtin copy. The SIMD shaped variants
// move 16-byte blocks with a scalar byte tail, which is the point of
// benchmarking them against the runtime's memmove.
package memcopy

import "github.com/cwbudde/algo-bench/internal/kernels"

// Copy copies min(len(dst), len(src)) bytes from src to dst and returns
// the number of bytes copied. dst and src must not overlap.
func Copy(dst, src []byte) int {
	n := min(len(dst), len(src))
	kernels.CopyBytes(dst[:n], src[:n])
	return n
}
