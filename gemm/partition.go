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

// tilePartition maps the M x N output onto a complete, non-overlapping grid
// of MB x NB tiles. Tiles along the right and bottom edges are clamped to
// the matrix boundary, so the cover is exact for any dimensions, including
// non-multiples of the tile sizes.
type tilePartition struct {
	m, n   int
	mb, nb int
	nI, nJ int
}

func newTilePartition(m, n int, blk Block) tilePartition {
	return tilePartition{
		m:  m,
		n:  n,
		mb: blk.MB,
		nb: blk.NB,
		nI: ceilDiv(m, blk.MB),
		nJ: ceilDiv(n, blk.NB),
	}
}

// numTiles returns the flat tile count nI * nJ. Flat indices in
// [0, numTiles) are the unit of parallel work.
func (p tilePartition) numTiles() int {
	return p.nI * p.nJ
}

// tile is one boundary-clamped output sub-rectangle
// [i0, i1) x [j0, j1) of C.
type tile struct {
	i0, i1 int
	j0, j1 int
}

func (t tile) rows() int { return t.i1 - t.i0 }
func (t tile) cols() int { return t.j1 - t.j0 }

// tile maps a flat index to its sub-rectangle. The mapping
// t -> (t / nJ, t mod nJ) is a bijection onto the grid.
func (p tilePartition) tile(t int) tile {
	ti := t / p.nJ
	tj := t % p.nJ
	i0 := ti * p.mb
	j0 := tj * p.nb
	return tile{
		i0: i0,
		i1: min(i0+p.mb, p.m),
		j0: j0,
		j1: min(j0+p.nb, p.n),
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
