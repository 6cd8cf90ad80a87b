package registry

import (
	"testing"

	"github.com/cwbudde/algo-bench/internal/cpu"
)

func TestOpRegistryRegister(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Sum:       func(data []float64) float64 { return 0 },
	})
	reg.Register(OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Sum:       func(data []float64) float64 { return 0 },
	})

	entries := reg.ListEntries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestOpRegistryLookupPriority(t *testing.T) {
	reg := &OpRegistry{}

	// Register out of priority order to exercise sorting.
	reg.Register(OpEntry{Name: "generic", SIMDLevel: cpu.SIMDNone, Priority: 0})
	reg.Register(OpEntry{Name: "neon", SIMDLevel: cpu.SIMDNEON, Priority: 15})
	reg.Register(OpEntry{Name: "sse2", SIMDLevel: cpu.SIMDSSE2, Priority: 10})

	tests := []struct {
		name     string
		features cpu.Features
		want     string
	}{
		{
			name:     "SSE2 available - select SSE2",
			features: cpu.Features{HasSSE2: true},
			want:     "sse2",
		},
		{
			name:     "NEON available - select NEON",
			features: cpu.Features{HasNEON: true},
			want:     "neon",
		},
		{
			name:     "no SIMD - select generic",
			features: cpu.Features{},
			want:     "generic",
		},
		{
			name:     "ForceGeneric - select generic",
			features: cpu.Features{HasSSE2: true, HasNEON: true, ForceGeneric: true},
			want:     "generic",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := reg.Lookup(tt.features)
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tt.want {
				t.Errorf("expected %q, got %q", tt.want, entry.Name)
			}
		})
	}
}

func TestOpRegistryLookupEmpty(t *testing.T) {
	reg := &OpRegistry{}

	if entry := reg.Lookup(cpu.Features{HasSSE2: true}); entry != nil {
		t.Errorf("expected nil from empty registry, got %q", entry.Name)
	}
}

func TestOpRegistryListEntriesSorted(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", Priority: 0})
	reg.Register(OpEntry{Name: "sse2", Priority: 10})
	reg.Register(OpEntry{Name: "neon", Priority: 15})

	entries := reg.ListEntries()
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Priority < entries[i].Priority {
			t.Fatalf("entries not sorted by descending priority: %q (%d) before %q (%d)",
				entries[i-1].Name, entries[i-1].Priority, entries[i].Name, entries[i].Priority)
		}
	}
}

func TestOpRegistryReset(t *testing.T) {
	reg := &OpRegistry{}

	reg.Register(OpEntry{Name: "generic", Priority: 0})
	reg.Reset()

	if entries := reg.ListEntries(); len(entries) != 0 {
		t.Fatalf("expected empty registry after Reset, got %d entries", len(entries))
	}
}
