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
	"fmt"
	"math/rand"
	"testing"
)

// Packing is a pure copy: every packed element must be bit-identical to its
// source, including awkward row lengths that leave vector tails.
func TestPackAExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, tc := range []struct{ rows, cols, ld int }{
		{1, 1, 1},
		{8, 8, 8},
		{8, 8, 31},
		{7, 13, 40},
		{256, 256, 300},
		{3, 1, 5},
	} {
		t.Run(fmt.Sprintf("%dx%d_ld%d", tc.rows, tc.cols, tc.ld), func(t *testing.T) {
			src := make([]float32, tc.rows*tc.ld)
			for i := range src {
				src[i] = rng.Float32()*2 - 1
			}
			dst := make([]float32, tc.rows*tc.cols)
			packA(dst, src, tc.ld, tc.rows, tc.cols)
			for i := 0; i < tc.rows; i++ {
				for j := 0; j < tc.cols; j++ {
					if got, want := dst[i*tc.cols+j], src[i*tc.ld+j]; got != want {
						t.Fatalf("dst[%d,%d] = %v, want %v", i, j, got, want)
					}
				}
			}
		})
	}
}

func TestPackBExact(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	const rows, cols, ld = 37, 19, 64
	src := make([]float32, rows*ld)
	for i := range src {
		src[i] = rng.Float32()*2 - 1
	}
	dst := make([]float32, rows*cols)
	packB(dst, src, ld, rows, cols)
	for k := 0; k < rows; k++ {
		for j := 0; j < cols; j++ {
			if got, want := dst[k*cols+j], src[k*ld+j]; got != want {
				t.Fatalf("dst[%d,%d] = %v, want %v", k, j, got, want)
			}
		}
	}
}

func TestCopyRowTail(t *testing.T) {
	// Lengths below, at, and just above typical lane counts.
	for _, n := range []int{1, 3, 4, 7, 8, 9, 15, 16, 17, 100} {
		src := make([]float32, n)
		for i := range src {
			src[i] = float32(i + 1)
		}
		dst := make([]float32, n)
		copyRow(dst, src)
		for i := range src {
			if dst[i] != src[i] {
				t.Fatalf("n=%d: dst[%d] = %v, want %v", n, i, dst[i], src[i])
			}
		}
	}
}
