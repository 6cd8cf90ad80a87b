//go:build arm64 && !purego

package neon

import "encoding/binary"

// HashUpdate folds data into the DJB2 state h and returns the new state.
//
// Fetches 16-byte blocks as two little-endian words but still folds every
// byte strictly left to right, so the result is bit-identical to the scalar
// variant for any input.
func HashUpdate(h uint64, data []byte) uint64 {
	i := 0
	for ; i+16 <= len(data); i += 16 {
		lo := binary.LittleEndian.Uint64(data[i:])
		hi := binary.LittleEndian.Uint64(data[i+8:])
		for shift := uint(0); shift < 64; shift += 8 {
			h = h*33 + (lo>>shift)&0xFF
		}
		for shift := uint(0); shift < 64; shift += 8 {
			h = h*33 + (hi>>shift)&0xFF
		}
	}
	for ; i < len(data); i++ {
		h = h*33 + uint64(data[i])
	}
	return h
}
