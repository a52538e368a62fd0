// Package invert_test provides benchmarks contrasting cold computation
// with cache-served hits.
package invert_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/matcache/invert"
	"github.com/katalvlaran/matcache/matrix"
)

// benchSizes are the square dimensions to benchmark.
var benchSizes = []int{8, 32, 128}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkE error
)

// benchMatrix builds a diagonally dominant n×n matrix, guaranteed
// invertible without pivoting.
func benchMatrix(b *testing.B, n int, seed int64) *matrix.Dense {
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
				v += float64(n) // dominance keeps every pivot away from zero
			}
			if err = m.Set(i, j, v); err != nil {
				b.Fatal(err)
			}
		}
	}

	return m
}

func BenchmarkSolve_Miss(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := benchMatrix(b, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				c, err := invert.NewCache(m)
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
				sinkM, sinkE = invert.Solve(c)
				if sinkE != nil {
					b.Fatal(sinkE)
				}
			}
		})
	}
}

func BenchmarkSolve_Hit(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			c, err := invert.NewCache(benchMatrix(b, n, 1337))
			if err != nil {
				b.Fatal(err)
			}
			if _, err = invert.Solve(c); err != nil { // warm the slot
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkM, sinkE = invert.Solve(c)
			}
		})
	}
}
