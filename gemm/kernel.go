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

// Register-tile geometry. The 8x8 micro-tile matches one 8-lane float32
// vector per row and an 8-vector accumulator budget. An implementation
// targeting a different vector width should change microM/microN and
// regenerate the accumulator set rather than reinterpret these.
const (
	microM = 8
	microN = 8

	// kernelUnroll is the K-loop unroll factor; four independent FMA
	// groups per iteration for instruction-level parallelism.
	kernelUnroll = 4

	// prefetchDistA is how many reduction steps ahead the A stream is
	// touched inside the unrolled loop.
	prefetchDistA = 32
)

// vectorKernelOK reports whether the target has at least microN float32
// lanes. Vector loads clamp to the lane count, so on narrower targets the
// 8-wide kernels would drop columns; every micro-tile takes the scalar
// kernels instead.
var vectorKernelOK = hwy.MaxLanes[float32]() >= microN

// kernel8x8 computes C[0:8, 0:8] += A * B where A is a packed 8 x kc panel
// (row stride kc) and B is a packed kc x 8 panel (row stride microN). C is
// addressed at leading dimension ldc and accumulated in place.
//
// The eight accumulator rows are loaded from C once, carried across the
// whole reduction, and stored once at the end; each reduction step
// broadcasts one A scalar per row and fuses it against a single 8-wide B
// row. Accumulation over k is strictly sequential, so the result is
// deterministic for a fixed panel decomposition.
func kernel8x8(kc int, a, b, c []float32, ldc int) {
	c0 := hwy.Load(c[0*ldc : 0*ldc+microN])
	c1 := hwy.Load(c[1*ldc : 1*ldc+microN])
	c2 := hwy.Load(c[2*ldc : 2*ldc+microN])
	c3 := hwy.Load(c[3*ldc : 3*ldc+microN])
	c4 := hwy.Load(c[4*ldc : 4*ldc+microN])
	c5 := hwy.Load(c[5*ldc : 5*ldc+microN])
	c6 := hwy.Load(c[6*ldc : 6*ldc+microN])
	c7 := hwy.Load(c[7*ldc : 7*ldc+microN])

	k := 0
	for ; k+kernelUnroll <= kc; k += kernelUnroll {
		b0 := hwy.Load(b[(k+0)*microN : (k+0)*microN+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+0]), b0, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+0]), b0, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+0]), b0, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+0]), b0, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+0]), b0, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+0]), b0, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+0]), b0, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+0]), b0, c7)

		b1 := hwy.Load(b[(k+1)*microN : (k+1)*microN+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+1]), b1, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+1]), b1, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+1]), b1, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+1]), b1, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+1]), b1, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+1]), b1, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+1]), b1, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+1]), b1, c7)

		b2 := hwy.Load(b[(k+2)*microN : (k+2)*microN+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+2]), b2, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+2]), b2, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+2]), b2, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+2]), b2, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+2]), b2, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+2]), b2, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+2]), b2, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+2]), b2, c7)

		b3 := hwy.Load(b[(k+3)*microN : (k+3)*microN+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+3]), b3, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+3]), b3, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+3]), b3, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+3]), b3, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+3]), b3, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+3]), b3, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+3]), b3, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+3]), b3, c7)

		// Touch both streams one unroll group ahead; Go has no portable
		// prefetch instruction, the read primes the hardware prefetcher.
		if pf := (k + 2*kernelUnroll) * microN; pf < kc*microN {
			_ = b[pf]
		}
		if pf := k + prefetchDistA; pf < kc {
			_ = a[pf]
		}
	}

	// Remaining kc % kernelUnroll reduction steps.
	for ; k < kc; k++ {
		bv := hwy.Load(b[k*microN : k*microN+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k]), bv, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k]), bv, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k]), bv, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k]), bv, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k]), bv, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k]), bv, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k]), bv, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k]), bv, c7)
	}

	hwy.Store(c0, c[0*ldc:0*ldc+microN])
	hwy.Store(c1, c[1*ldc:1*ldc+microN])
	hwy.Store(c2, c[2*ldc:2*ldc+microN])
	hwy.Store(c3, c[3*ldc:3*ldc+microN])
	hwy.Store(c4, c[4*ldc:4*ldc+microN])
	hwy.Store(c5, c[5*ldc:5*ldc+microN])
	hwy.Store(c6, c[6*ldc:6*ldc+microN])
	hwy.Store(c7, c[7*ldc:7*ldc+microN])
}

// kernel8x8Strided is kernel8x8 with the B panel read at leading dimension
// ldb instead of densely. It is the entry used when the packed B panel
// spans more than one 8-column register block, so each micro-tile reads an
// 8-wide window out of a wider packed row.
func kernel8x8Strided(kc int, a, b []float32, ldb int, c []float32, ldc int) {
	c0 := hwy.Load(c[0*ldc : 0*ldc+microN])
	c1 := hwy.Load(c[1*ldc : 1*ldc+microN])
	c2 := hwy.Load(c[2*ldc : 2*ldc+microN])
	c3 := hwy.Load(c[3*ldc : 3*ldc+microN])
	c4 := hwy.Load(c[4*ldc : 4*ldc+microN])
	c5 := hwy.Load(c[5*ldc : 5*ldc+microN])
	c6 := hwy.Load(c[6*ldc : 6*ldc+microN])
	c7 := hwy.Load(c[7*ldc : 7*ldc+microN])

	k := 0
	for ; k+kernelUnroll <= kc; k += kernelUnroll {
		b0 := hwy.Load(b[(k+0)*ldb : (k+0)*ldb+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+0]), b0, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+0]), b0, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+0]), b0, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+0]), b0, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+0]), b0, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+0]), b0, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+0]), b0, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+0]), b0, c7)

		b1 := hwy.Load(b[(k+1)*ldb : (k+1)*ldb+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+1]), b1, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+1]), b1, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+1]), b1, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+1]), b1, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+1]), b1, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+1]), b1, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+1]), b1, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+1]), b1, c7)

		b2 := hwy.Load(b[(k+2)*ldb : (k+2)*ldb+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+2]), b2, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+2]), b2, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+2]), b2, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+2]), b2, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+2]), b2, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+2]), b2, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+2]), b2, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+2]), b2, c7)

		b3 := hwy.Load(b[(k+3)*ldb : (k+3)*ldb+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k+3]), b3, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k+3]), b3, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k+3]), b3, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k+3]), b3, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k+3]), b3, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k+3]), b3, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k+3]), b3, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k+3]), b3, c7)

		if pf := (k + 2*kernelUnroll) * ldb; pf <= (kc-1)*ldb {
			_ = b[pf]
		}
		if pf := k + prefetchDistA; pf < kc {
			_ = a[pf]
		}
	}

	for ; k < kc; k++ {
		bv := hwy.Load(b[k*ldb : k*ldb+microN])
		c0 = hwy.MulAdd(hwy.Set(a[0*kc+k]), bv, c0)
		c1 = hwy.MulAdd(hwy.Set(a[1*kc+k]), bv, c1)
		c2 = hwy.MulAdd(hwy.Set(a[2*kc+k]), bv, c2)
		c3 = hwy.MulAdd(hwy.Set(a[3*kc+k]), bv, c3)
		c4 = hwy.MulAdd(hwy.Set(a[4*kc+k]), bv, c4)
		c5 = hwy.MulAdd(hwy.Set(a[5*kc+k]), bv, c5)
		c6 = hwy.MulAdd(hwy.Set(a[6*kc+k]), bv, c6)
		c7 = hwy.MulAdd(hwy.Set(a[7*kc+k]), bv, c7)
	}

	hwy.Store(c0, c[0*ldc:0*ldc+microN])
	hwy.Store(c1, c[1*ldc:1*ldc+microN])
	hwy.Store(c2, c[2*ldc:2*ldc+microN])
	hwy.Store(c3, c[3*ldc:3*ldc+microN])
	hwy.Store(c4, c[4*ldc:4*ldc+microN])
	hwy.Store(c5, c[5*ldc:5*ldc+microN])
	hwy.Store(c6, c[6*ldc:6*ldc+microN])
	hwy.Store(c7, c[7*ldc:7*ldc+microN])
}
