package bench

import "bytes"

// benchText is the unit repeated to build the search input. The pattern
// "fox" occurs exactly once per repetition and never across a boundary.
const benchText = "The quick brown fox jumps over the lazy dog. "

// lcg is a small linear congruential generator (the classic C rand
// constants). Workload data must be deterministic so checksums are
// comparable across hosts and implementation variants.
type lcg struct {
	state uint64
}

func (g *lcg) next() float64 {
	g.state = g.state*1103515245 + 12345
	return float64((g.state>>16)&0x7FFF) / 32768.0
}

// randomFloats returns n floats in [0, 1) from the given seed.
func randomFloats(seed uint64, n int) []float64 {
	g := lcg{state: seed}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.next()
	}
	return out
}

// sequentialBytes returns n bytes with b[i] = i mod 256.
func sequentialBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// searchInput returns the pangram repeated n times.
func searchInput(n int) []byte {
	if n <= 0 {
		return nil
	}
	return bytes.Repeat([]byte(benchText), n)
}
