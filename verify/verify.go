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

// Package verify compares computed matrix products against a reference in
// the Frobenius norm. The engine never checks its own arithmetic; this
// package is the harness's and the test suite's oracle gate.
package verify

import "math"

// RelTol is the accepted relative Frobenius-norm error of any engine
// algorithm against the naive reference. Tile decomposition only reorders
// an associative-up-to-rounding reduction, so results agree to rounding,
// not bit-for-bit.
const RelTol = 1e-6

// FrobeniusNorm returns sqrt(sum m[i,j]^2) over the rows x cols view of m
// at leading dimension ld, accumulated in float64.
func FrobeniusNorm(m []float32, rows, cols, ld int) float64 {
	var sum float64
	for i := 0; i < rows; i++ {
		row := m[i*ld : i*ld+cols]
		for _, v := range row {
			sum += float64(v) * float64(v)
		}
	}
	return math.Sqrt(sum)
}

// RelativeError returns ||got - want||_F / ||want||_F over rows x cols
// views at leading dimension ld. The denominator is floored to keep the
// all-zero reference well defined.
func RelativeError(got, want []float32, rows, cols, ld int) float64 {
	var diff float64
	for i := 0; i < rows; i++ {
		g := got[i*ld : i*ld+cols]
		w := want[i*ld : i*ld+cols]
		for j := range g {
			d := float64(g[j]) - float64(w[j])
			diff += d * d
		}
	}
	return math.Sqrt(diff) / (FrobeniusNorm(want, rows, cols, ld) + 1e-30)
}

// Within reports whether got matches want inside the RelTol gate.
func Within(got, want []float32, rows, cols, ld int) bool {
	return RelativeError(got, want, rows, cols, ld) <= RelTol
}
