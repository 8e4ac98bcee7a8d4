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

// Panel packing copies a strided operand sub-block into dense scratch so the
// microkernel's inner loop reads stride-1 (A rows) or small fixed-stride
// (B rows) memory. The copies are exact, element for element; packing never
// changes a value. The O(rows*cols) copy cost is amortized against the
// O(MB*NB*KB) compute each packed panel feeds.

// packA copies the rows x cols sub-block of A at leading dimension lda into
// dst with dense stride cols.
func packA(dst, a []float32, lda, rows, cols int) {
	for i := 0; i < rows; i++ {
		copyRow(dst[i*cols:i*cols+cols], a[i*lda:i*lda+cols])
	}
}

// packB copies the rows x cols sub-block of B at leading dimension ldb into
// dst with dense stride cols.
func packB(dst, b []float32, ldb, rows, cols int) {
	for k := 0; k < rows; k++ {
		copyRow(dst[k*cols:k*cols+cols], b[k*ldb:k*ldb+cols])
	}
}

// copyRow moves one contiguous row through vector registers with a scalar
// tail, the same shape as the packed-row stores in the microkernel.
func copyRow(dst, src []float32) {
	lanes := hwy.Zero[float32]().NumLanes()
	n := len(src)
	var j int
	for j = 0; j+lanes <= n; j += lanes {
		hwy.Store(hwy.Load(src[j:j+lanes]), dst[j:j+lanes])
	}
	for ; j < n; j++ {
		dst[j] = src[j]
	}
}
