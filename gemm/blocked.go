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

import "github.com/ajroetker/go-highway/hwy"

// multiplyBlocked runs the cache-blocked loop nest without packing: output
// tiles in parallel, K panels of width <= KB inside each tile, rank-1
// updates with a vectorized column sweep. Operands are still read at their
// original strides; packing is what AlgorithmPacked adds on top.
func multiplyBlocked(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int, blk Block, cfg Config) error {
	part := newTilePartition(m, n, blk)
	return forEachTile(cfg.workerCount(), part.numTiles(), func(t int) {
		blockedTile(part.tile(t), k, blk.KB, a, lda, b, ldb, c, ldc)
	})
}

func blockedTile(t tile, k, kb int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int) {
	lanes := hwy.Zero[float32]().NumLanes()
	for kk := 0; kk < k; kk += kb {
		kMax := min(kk+kb, k)
		for i := t.i0; i < t.i1; i++ {
			cRow := c[i*ldc+t.j0 : i*ldc+t.j1]
			for p := kk; p < kMax; p++ {
				av := a[i*lda+p]
				vA := hwy.Set(av)
				bRow := b[p*ldb+t.j0 : p*ldb+t.j1]
				cols := t.cols()
				var j int
				for j = 0; j+lanes <= cols; j += lanes {
					acc := hwy.MulAdd(vA, hwy.Load(bRow[j:j+lanes]), hwy.Load(cRow[j:j+lanes]))
					hwy.Store(acc, cRow[j:j+lanes])
				}
				for ; j < cols; j++ {
					cRow[j] += av * bRow[j]
				}
			}
		}
	}
}
