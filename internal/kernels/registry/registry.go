// Package registry provides the implementation registry for benchmark kernels.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE2, NEON) to coexist. The best variant for the current CPU is
// selected automatically at runtime.
//
// Architecture-specific variants register themselves via init() functions,
// and the kernels package uses the registry to select the best variant at
// runtime based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-bench/internal/cpu"
)

// OpEntry represents a registered implementation variant of the kernel suite.
//
// Every variant provides the complete operation set; a variant with a missing
// function is a registration bug and trips the dispatch layer's panic.
type OpEntry struct {
	// Name is a human-readable identifier for this variant (e.g., "sse2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this variant.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible variants
	// exist. Higher priority variants are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - NEON: 15
	Priority int

	// MatMul computes dst = a × b for row-major matrices, where a is m×k,
	// b is k×n and dst is m×n. dst must not alias a or b.
	MatMul func(dst, a, b []float64, m, k, n int)

	// Sum returns the sum of all elements in data.
	Sum func(data []float64) float64

	// HashUpdate folds data into the running DJB2 state h and returns the
	// new state. Bytes are folded strictly left to right.
	HashUpdate func(h uint64, data []byte) uint64

	// CountSubstr returns the number of (possibly overlapping) occurrences
	// of pattern in text.
	CountSubstr func(text, pattern []byte) int

	// CopyBytes copies src into dst. Both slices have equal length and must
	// not overlap.
	CopyBytes func(dst, src []byte)

	// PolyEval evaluates the polynomial with the given coefficients
	// (coeffs[i] is the coefficient of x^i) at x.
	PolyEval func(x float64, coeffs []float64) float64
}

// OpRegistry manages the registration and lookup of kernel implementation
// variants.
//
// Variants register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority variant compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by all kernel dispatch.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in
// architecture-specific packages. It is safe to call concurrently, but all
// registrations should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible variant is found, returns nil (which should never happen if the
// generic fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~3 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and the CLI's -list output.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
