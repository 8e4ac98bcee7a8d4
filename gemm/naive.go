// Copyright 2025 go-gemm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gemm

import (
	"github.com/ajroetker/go-highway/hwy"
	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Naive computes C += A * B with the straightforward i-k-j loop order, the
// whole row of C accumulated in one pass per k. It takes no blocking
// configuration and runs single-threaded; every other algorithm in this
// package is checked against it.
func Naive(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int) {
	checkOperands(m, n, k, a, lda, b, ldb, c, ldc)
	lanes := hwy.Zero[float32]().NumLanes()
	for i := 0; i < m; i++ {
		cRow := c[i*ldc : i*ldc+n]
		for p := 0; p < k; p++ {
			av := a[i*lda+p]
			vA := hwy.Set(av)
			bRow := b[p*ldb : p*ldb+n]
			var j int
			for j = 0; j+lanes <= n; j += lanes {
				acc := hwy.MulAdd(vA, hwy.Load(bRow[j:j+lanes]), hwy.Load(cRow[j:j+lanes]))
				hwy.Store(acc, cRow[j:j+lanes])
			}
			for ; j < n; j++ {
				cRow[j] += av * bRow[j]
			}
		}
	}
}

// multiplyNaive is the Multiply entry for the naive algorithm: the same
// loop order, rows statically partitioned across workers. Row ranges are
// disjoint in C, so workers never share an output element.
func multiplyNaive(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int, cfg Config) error {
	workers := cfg.workerCount()
	if workers == 1 || m == 1 {
		Naive(m, n, k, a, lda, b, ldb, c, ldc)
		return nil
	}
	pool := workerpool.New(workers)
	defer pool.Close()
	pool.ParallelFor(m, func(start, end int) {
		Naive(end-start, n, k, a[start*lda:], lda, b, ldb, c[start*ldc:], ldc)
	})
	return nil
}

// checkOperands panics on operand slices too short for the stated
// dimensions. Dimension misuse is a programmer error, not part of the
// error surface.
func checkOperands(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int) {
	if m < 0 || n < 0 || k < 0 {
		panic("gemm: negative dimension")
	}
	if m == 0 || n == 0 {
		return
	}
	if lda < k || ldb < n || ldc < n {
		panic("gemm: leading dimension shorter than row")
	}
	if k > 0 && len(a) < (m-1)*lda+k {
		panic("gemm: A slice too short")
	}
	if k > 0 && len(b) < (k-1)*ldb+n {
		panic("gemm: B slice too short")
	}
	if len(c) < (m-1)*ldc+n {
		panic("gemm: C slice too short")
	}
}
