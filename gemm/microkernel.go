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

// multiplyMicroKernel runs the full pipeline: tiles in parallel, packed
// K panels, and the tile body swept in 8x8 register micro-tiles. Full
// micro-tiles go through the vector kernel; boundary micro-tiles narrower
// than 8 rows or columns must take the scalar kernel, because the fixed
// 8-wide vector loads and stores would touch memory outside the tile.
func multiplyMicroKernel(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int, blk Block, cfg Config) error {
	part := newTilePartition(m, n, blk)
	return forEachTileWithScratch(cfg.workerCount(), part.numTiles(), blk, func(s *scratchPanels, ti int) {
		microKernelTile(part.tile(ti), k, blk.KB, s, a, lda, b, ldb, c, ldc)
	})
}

func microKernelTile(t tile, k, kb int, s *scratchPanels, a []float32, lda int, b []float32, ldb int, c []float32, ldc int) {
	rows := t.rows()
	cols := t.cols()
	for kk := 0; kk < k; kk += kb {
		kc := min(kk+kb, k) - kk

		packA(s.a, a[t.i0*lda+kk:], lda, rows, kc)
		packB(s.b, b[kk*ldb+t.j0:], ldb, kc, cols)

		for i0 := 0; i0 < rows; i0 += microM {
			mr := min(microM, rows-i0)
			ap := s.a[i0*kc:]
			for j0 := 0; j0 < cols; j0 += microN {
				nr := min(microN, cols-j0)
				cBlk := c[(t.i0+i0)*ldc+t.j0+j0:]
				switch {
				case !vectorKernelOK:
					kernelRefStrided(mr, nr, kc, ap, s.b[j0:], cols, cBlk, ldc)
				case mr == microM && nr == microN && cols == microN:
					// The packed B panel is exactly one register block
					// wide, so its stride is already the kernel's.
					kernel8x8(kc, ap, s.b, cBlk, ldc)
				case mr == microM && nr == microN:
					kernel8x8Strided(kc, ap, s.b[j0:], cols, cBlk, ldc)
				default:
					kernelRefStrided(mr, nr, kc, ap, s.b[j0:], cols, cBlk, ldc)
				}
			}
		}
	}
}
