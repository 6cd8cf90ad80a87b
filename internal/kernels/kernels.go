// Package kernels dispatches the benchmark kernel suite to the best
// implementation variant for the current CPU.
//
// Variants (generic, SSE2-shaped, NEON-shaped) register themselves with the
// registry via init() functions in the arch packages; the build-tagged
// init_*.go files in this package pull in the right ones per architecture.
// Selection happens once, on first dispatch, and is cached. Tests and the
// CLI's forced-generic mode change cpu forced features and then call
// Refresh to re-evaluate the selection.
//
// All variants are observationally equivalent: bit-exact for the integer
// and byte kernels, within accumulated rounding error for the float
// kernels.
package kernels

import (
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-bench/internal/cpu"
	"github.com/cwbudde/algo-bench/internal/kernels/registry"
)

var (
	// activeEntry caches the selected variant. The read path is a single
	// atomic load because dispatch sits on the benchmark hot path (the
	// polynomial driver dispatches once per evaluation).
	activeEntry atomic.Pointer[registry.OpEntry]

	// activeMutex serializes selection and Refresh.
	activeMutex sync.Mutex
)

// active returns the selected variant, performing the one-time selection on
// first use.
func active() *registry.OpEntry {
	if e := activeEntry.Load(); e != nil {
		return e
	}
	return selectActive()
}

func selectActive() *registry.OpEntry {
	activeMutex.Lock()
	defer activeMutex.Unlock()

	if e := activeEntry.Load(); e != nil {
		return e
	}

	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("kernels: no implementation variant registered (missing generic fallback?)")
	}
	if entry.MatMul == nil || entry.Sum == nil || entry.HashUpdate == nil ||
		entry.CountSubstr == nil || entry.CopyBytes == nil || entry.PolyEval == nil {
		panic("kernels: variant " + entry.Name + " is missing operations")
	}

	activeEntry.Store(entry)
	return entry
}

// Refresh discards the cached selection so the next dispatch re-evaluates
// CPU features. Callers that change forced features (tests, the CLI's
// -generic flag) must call Refresh before dispatching.
func Refresh() {
	activeMutex.Lock()
	activeEntry.Store(nil)
	activeMutex.Unlock()
}

// ImplName returns the name of the selected variant (e.g. "generic",
// "sse2", "neon").
func ImplName() string {
	return active().Name
}

// Level returns the SIMD level of the selected variant.
func Level() cpu.SIMDLevel {
	return active().SIMDLevel
}

// Variant describes a registered implementation variant for listings.
type Variant struct {
	Name     string
	Level    cpu.SIMDLevel
	Priority int
	Selected bool
}

// Variants returns all registered variants sorted by descending priority,
// with the currently selected one marked.
func Variants() []Variant {
	selected := active().Name

	entries := registry.Global.ListEntries()
	out := make([]Variant, len(entries))
	for i, e := range entries {
		out[i] = Variant{
			Name:     e.Name,
			Level:    e.SIMDLevel,
			Priority: e.Priority,
			Selected: e.Name == selected,
		}
	}
	return out
}
