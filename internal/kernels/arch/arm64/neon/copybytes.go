//go:build arm64 && !purego

package neon

import "encoding/binary"

// CopyBytes copies src into dst. Both slices have equal length and must not
// overlap. Moves 16-byte blocks, then one 8-byte word if at least eight
// bytes remain, then a bytewise tail.
func CopyBytes(dst, src []byte) {
	n := len(src)
	i := 0
	for ; i+16 <= n; i += 16 {
		binary.LittleEndian.PutUint64(dst[i:], binary.LittleEndian.Uint64(src[i:]))
		binary.LittleEndian.PutUint64(dst[i+8:], binary.LittleEndian.Uint64(src[i+8:]))
	}
	if i+8 <= n {
		binary.LittleEndian.PutUint64(dst[i:], binary.LittleEndian.Uint64(src[i:]))
		i += 8
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
}
