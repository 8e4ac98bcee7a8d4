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

// Matrix is a non-owning view of a dense row-major float32 matrix. The
// caller owns Data and must keep it alive for the duration of any call the
// view is passed to. Stride is the leading dimension: the element count
// between the starts of consecutive rows, which may exceed Cols for
// sub-matrix views.
type Matrix struct {
	Data []float32
	Rows int
	Cols int
	// Stride >= Cols.
	Stride int
}

// NewMatrix allocates backing storage for a rows x cols matrix and returns a
// view of it with Stride == cols.
func NewMatrix(rows, cols int) Matrix {
	if rows < 0 || cols < 0 {
		panic("gemm: negative matrix dimensions")
	}
	return Matrix{
		Data:   make([]float32, rows*cols),
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
	}
}

// View returns the sub-matrix [r0, r0+rows) x [c0, c0+cols) sharing the
// receiver's storage.
func (m Matrix) View(r0, c0, rows, cols int) Matrix {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.Rows || c0+cols > m.Cols {
		panic("gemm: view out of range")
	}
	return Matrix{
		Data:   m.Data[r0*m.Stride+c0:],
		Rows:   rows,
		Cols:   cols,
		Stride: m.Stride,
	}
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float32 {
	return m.Data[i*m.Stride+j]
}

// Set stores v at row i, column j.
func (m Matrix) Set(i, j int, v float32) {
	m.Data[i*m.Stride+j] = v
}

// Block holds the cache-blocking tile sizes: C is partitioned into MB x NB
// output tiles and the K reduction into panels of width KB. All three must
// be positive. One Block applies to a whole Multiply call.
type Block struct {
	MB int
	NB int
	KB int
}

// DefaultBlock returns the default 256x256x256 blocking. With float32
// elements that is a 256KB packed panel per operand, sized for typical L2
// caches.
func DefaultBlock() Block {
	return Block{MB: 256, NB: 256, KB: 256}
}

func (b Block) valid() bool {
	return b.MB > 0 && b.NB > 0 && b.KB > 0
}

// Config carries per-call execution settings.
type Config struct {
	// Workers is the number of worker goroutines for the parallel tile
	// sweep. Zero or negative means GOMAXPROCS. The engine never consults
	// ambient process-wide settings beyond that default.
	Workers int
}
