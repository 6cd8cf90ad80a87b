// Package djb2 implements the DJB2 hash (Bernstein's h = h*33 + c,
// seeded with 5381) over byte slices.
//
// All variants of the underlying kernel produce bit-identical results:
// the SIMD shaped paths widen the fetch to 16-byte blocks but fold the
// bytes into the running state in input order, so the hash value never
// depends on which variant was dispatched.
package djb2

import (
	"encoding/binary"

	"github.com/cwbudde/algo-bench/internal/kernels"
)

// Seed is the DJB2 initial state.
const Seed uint64 = 5381

// Sum returns the DJB2 hash of data.
func Sum(data []byte) uint64 {
	return kernels.HashUpdate(Seed, data)
}

// Digest is a streaming DJB2 hash implementing hash.Hash64.
// Splitting the input across Write calls at any byte boundary yields the
// same value as a single Sum over the concatenation.
type Digest struct {
	state uint64
}

// New returns a Digest initialized to the DJB2 seed.
func New() *Digest {
	return &Digest{state: Seed}
}

// Write folds p into the running hash state. It never fails.
func (d *Digest) Write(p []byte) (int, error) {
	d.state = kernels.HashUpdate(d.state, p)
	return len(p), nil
}

// Sum64 returns the current hash value.
func (d *Digest) Sum64() uint64 {
	return d.state
}

// Sum appends the big-endian hash value to in.
func (d *Digest) Sum(in []byte) []byte {
	return binary.BigEndian.AppendUint64(in, d.state)
}

// Reset restores the digest to its seed state.
func (d *Digest) Reset() {
	d.state = Seed
}

// Size returns the number of bytes Sum appends.
func (d *Digest) Size() int {
	return 8
}

// BlockSize returns the block size the kernel consumes most efficiently.
func (d *Digest) BlockSize() int {
	return 16
}
