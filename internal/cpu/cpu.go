// Package cpu provides CPU feature detection for benchmark kernel selection.
//
// This package detects the SIMD instruction set extensions (SSE2, NEON)
// relevant to the 128-bit kernel variants and caches the results for
// efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"strings"
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Levels are not comparable across architectures (SSE2 vs NEON); selection
// between variants is driven by registry priority, not by level ordering.
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (baseline for amd64).
	SIMDSSE2

	// SIMDNEON indicates ARM NEON / Advanced SIMD (baseline for arm64).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64 SIMD features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all SIMD variants (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

// String returns a comma-separated list of the detected vector extensions,
// or "none" when no SIMD variant is usable. Used by the CLI banner.
func (f Features) String() string {
	if f.ForceGeneric {
		return "none (forced generic)"
	}

	var names []string
	if f.HasSSE2 {
		names = append(names, "SSE2")
	}
	if f.HasNEON {
		names = append(names, "NEON")
	}
	if len(names) == 0 {
		return "none"
	}

	return strings.Join(names, ", ")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasSSE2 returns true if the CPU supports SSE2 instructions.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasNEON returns true if the CPU supports ARM NEON (Advanced SIMD) instructions.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing and for the benchmark CLI's forced-generic mode.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified SIMD level.
// This function is used by the kernel registry to determine variant compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
