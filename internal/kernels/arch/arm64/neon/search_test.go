//go:build arm64 && !purego

package neon

import (
	"bytes"
	"strings"
	"testing"
)

func countRef(text, pattern []byte) int {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return 0
	}
	count := 0
	for i := 0; i+len(pattern) <= len(text); i++ {
		if bytes.Equal(text[i:i+len(pattern)], pattern) {
			count++
		}
	}
	return count
}

func TestCountSubstr_NEON_MatchesScalar(t *testing.T) {
	patterns := []string{"a", "ab", "fox", "zz"}
	texts := []string{
		"",
		"a",
		"abababab",
		"aaaaaaaaaaaaaaaaa",
		strings.Repeat("The quick brown fox jumps over the lazy dog. ", 5),
		strings.Repeat(".", 16) + "fox", // match entirely in the scalar tail
		strings.Repeat(".", 64),         // blocks with no hit at all
	}

	for _, pattern := range patterns {
		for _, text := range texts {
			got := CountSubstr([]byte(text), []byte(pattern))
			want := countRef([]byte(text), []byte(pattern))
			if got != want {
				t.Errorf("CountSubstr(%.20q..., %q) = %d, want %d", text, pattern, got, want)
			}
		}
	}
}

func TestCopyBytes_NEON(t *testing.T) {
	// Sizes 8..15 exercise the single 8-byte stage between the 16-byte
	// blocks and the bytewise tail.
	sizes := []int{0, 1, 7, 8, 9, 15, 16, 17, 24, 25, 32, 100, 4096}

	for _, n := range sizes {
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
	}
}

func TestHashUpdate_NEON_MatchesScalar(t *testing.T) {
	sizes := []int{0, 1, 15, 16, 17, 33, 100, 1000}

	for _, n := range sizes {
		data := make([]byte, n)
		for i := range data {
			data[i] = byte(i * 7)
		}

		got := HashUpdate(5381, data)

		want := uint64(5381)
		for _, b := range data {
			want = want*33 + uint64(b)
		}

		if got != want {
			t.Errorf("n=%d: HashUpdate = %#x, want %#x", n, got, want)
		}
	}
}
