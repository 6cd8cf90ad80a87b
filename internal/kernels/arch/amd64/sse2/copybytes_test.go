//go:build amd64 && !purego

package sse2

import (
	"bytes"
	"testing"
)

func TestCopyBytes_SSE2(t *testing.T) {
	sizes := []int{0, 1, 7, 8, 15, 16, 17, 31, 32, 33, 100, 4096}

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			src := make([]byte, n)
			for i := range src {
				src[i] = byte(i * 13)
			}
			dst := make([]byte, n)
			for i := range dst {
				dst[i] = 0xAA
			}

			CopyBytes(dst, src)

			if !bytes.Equal(dst, src) {
				t.Errorf("dst differs from src at n=%d", n)
			}
		})
	}
}

func BenchmarkCopyBytes_SSE2(b *testing.B) {
	sizes := []int{1024, 65536, 1 << 20}

	for _, n := range sizes {
		b.Run(sizeStr(n), func(b *testing.B) {
			src := make([]byte, n)
			dst := make([]byte, n)
			for i := range src {
				src[i] = byte(i)
			}

			b.ResetTimer()
			b.ReportAllocs()
			b.SetBytes(int64(n))

			for i := 0; i < b.N; i++ {
				CopyBytes(dst, src)
			}
		})
	}
}
