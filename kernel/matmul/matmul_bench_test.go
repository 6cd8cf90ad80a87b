package matmul

import (
	"fmt"
	"testing"
)

func BenchmarkMul(b *testing.B) {
	for _, n := range []int{16, 64, 200} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			x := New(n, n)
			y := New(n, n)
			for i := range x.Data {
				x.Data[i] = float64(i%17) * 0.5
				y.Data[i] = float64(i%13) * 0.25
			}

			var dst Matrix
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if err := MulTo(&dst, x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkMatrixSum(b *testing.B) {
	m := New(200, 200)
	for i := range m.Data {
		m.Data[i] = float64(i%29) * 0.125
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(m.Data) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Sum()
	}
}
