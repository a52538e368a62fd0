// Package ops_test provides benchmarks for LU and Inverse on diagonally
// dominant inputs (invertible without pivoting).
package ops_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/matrix"
	"github.com/katalvlaran/matcache/ops"
)

var benchSizes = []int{8, 32, 128}

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

// dominant builds an n×n matrix with a heavy diagonal.
func dominant(b *testing.B, n int, seed int64) *matrix.Dense {
	b.Helper()
	m, err := matrix.NewDense(n, n)
	if err != nil {
		b.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := rng.Float64()
			if i == j {
				v += float64(n)
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkLU(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := dominant(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				L, _, err := ops.LU(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = L
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := dominant(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				inv, err := ops.Inverse(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = inv
			}
		})
	}
}
