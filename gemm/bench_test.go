// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import (
	"fmt"
	"math/rand"
	"testing"
)

func benchmarkMultiply(b *testing.B, alg Algorithm, n, workers int) {
	rng := rand.New(rand.NewSource(42))
	am := randSlice(rng, n*n)
	bm := randSlice(rng, n*n)
	cm := make([]float32, n*n)
	blk := DefaultBlock()
	cfg := Config{Workers: workers}

	b.SetBytes(int64(3 * n * n * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := Multiply(alg, n, n, n, am, n, bm, n, cm, n, blk, cfg); err != nil {
			b.Fatal(err)
		}
	}
	flops := 2 * float64(n) * float64(n) * float64(n)
	b.ReportMetric(flops*float64(b.N)/b.Elapsed().Seconds()/1e9, "GFLOP/s")
}

func BenchmarkMultiply(b *testing.B) {
	for _, alg := range internalAlgorithms() {
		for _, n := range []int{256, 512} {
			b.Run(fmt.Sprintf("%s/n%d", alg, n), func(b *testing.B) {
				benchmarkMultiply(b, alg, n, 0)
			})
		}
	}
}

func BenchmarkMultiplySingleThread(b *testing.B) {
	for _, alg := range internalAlgorithms() {
		b.Run(alg.String(), func(b *testing.B) {
			benchmarkMultiply(b, alg, 384, 1)
		})
	}
}

func BenchmarkKernel8x8(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	const kc = 256
	a := randSlice(rng, microM*kc)
	bp := randSlice(rng, kc*microN)
	c := make([]float32, microM*microN)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		kernel8x8(kc, a, bp, c, microN)
	}
}

func BenchmarkPackB(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	const rows, cols, ld = 256, 256, 1024
	src := randSlice(rng, rows*ld)
	dst := make([]float32, rows*cols)
	b.SetBytes(int64(rows * cols * 4))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		packB(dst, src, ld, rows, cols)
	}
}
