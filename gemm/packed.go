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

// multiplyPacked adds panel packing to the blocked pipeline: for each tile
// and K panel, the A and B sub-blocks are copied into the worker's dense
// scratch first, so the rank-1 sweep reads stride-1 memory instead of the
// operands' leading dimensions.
func multiplyPacked(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int, blk Block, cfg Config) error {
	part := newTilePartition(m, n, blk)
	return forEachTileWithScratch(cfg.workerCount(), part.numTiles(), blk, func(s *scratchPanels, ti int) {
		packedTile(part.tile(ti), k, blk.KB, s, a, lda, b, ldb, c, ldc)
	})
}

func packedTile(t tile, k, kb int, s *scratchPanels, a []float32, lda int, b []float32, ldb int, c []float32, ldc int) {
	lanes := hwy.Zero[float32]().NumLanes()
	rows := t.rows()
	cols := t.cols()
	for kk := 0; kk < k; kk += kb {
		kc := min(kk+kb, k) - kk

		packA(s.a, a[t.i0*lda+kk:], lda, rows, kc)
		packB(s.b, b[kk*ldb+t.j0:], ldb, kc, cols)

		for i := 0; i < rows; i++ {
			cRow := c[(t.i0+i)*ldc+t.j0 : (t.i0+i)*ldc+t.j1]
			for p := 0; p < kc; p++ {
				av := s.a[i*kc+p]
				vA := hwy.Set(av)
				bRow := s.b[p*cols : p*cols+cols]
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
