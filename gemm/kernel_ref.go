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

// Scalar reference microkernels. These are not a performance fallback: at a
// matrix boundary a micro-tile can be narrower than 8 rows or columns, and
// the fixed-width vector kernel would read and write past the tile. The
// scalar kernels compute the identical mr x nr x kc product one element at
// a time, sequentially over k per output element.

// kernelRef computes C[0:mr, 0:nr] += A * B for a packed mr x kc panel of A
// (row stride kc) and a densely packed kc x nr panel of B (row stride nr).
func kernelRef(mr, nr, kc int, a, b, c []float32, ldc int) {
	for i := 0; i < mr; i++ {
		cRow := c[i*ldc : i*ldc+nr]
		for k := 0; k < kc; k++ {
			av := a[i*kc+k]
			bRow := b[k*nr : k*nr+nr]
			for j := 0; j < nr; j++ {
				cRow[j] += av * bRow[j]
			}
		}
	}
}

// kernelRefStrided is kernelRef with the B panel read at leading dimension
// ldb, for micro-tiles that window into a wider packed B panel.
func kernelRefStrided(mr, nr, kc int, a, b []float32, ldb int, c []float32, ldc int) {
	for i := 0; i < mr; i++ {
		cRow := c[i*ldc : i*ldc+nr]
		for k := 0; k < kc; k++ {
			av := a[i*kc+k]
			bRow := b[k*ldb : k*ldb+nr]
			for j := 0; j < nr; j++ {
				cRow[j] += av * bRow[j]
			}
		}
	}
}
