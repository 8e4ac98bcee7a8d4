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

package verify

import (
	"math"
	"math/rand"
	"testing"
)

func TestFrobeniusNorm(t *testing.T) {
	// 3-4-5 triangle, padded stride.
	m := []float32{3, 4, 0, 0, 0, 0}
	if got := FrobeniusNorm(m, 1, 2, 3); got != 5 {
		t.Fatalf("FrobeniusNorm = %v, want 5", got)
	}
	// The stride padding must not contribute.
	m[2] = 100
	if got := FrobeniusNorm(m, 2, 2, 3); math.Abs(got-5) > 1e-12 {
		t.Fatalf("FrobeniusNorm with padding = %v, want 5", got)
	}
}

func TestRelativeErrorSelfIsZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := make([]float32, 64*64)
	for i := range m {
		m[i] = rng.Float32()*2 - 1
	}
	if got := RelativeError(m, m, 64, 64, 64); got != 0 {
		t.Fatalf("self error = %v", got)
	}
	if !Within(m, m, 64, 64, 64) {
		t.Fatal("self not within tolerance")
	}
}

func TestRelativeErrorDetectsPerturbation(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	want := make([]float32, 32*32)
	for i := range want {
		want[i] = rng.Float32()*2 - 1
	}
	got := append([]float32(nil), want...)
	got[17] += 0.01

	if Within(got, want, 32, 32, 32) {
		t.Fatalf("perturbed matrix within tolerance: relerr=%v", RelativeError(got, want, 32, 32, 32))
	}
}

func TestRelativeErrorZeroReference(t *testing.T) {
	want := make([]float32, 16)
	got := make([]float32, 16)
	if e := RelativeError(got, want, 4, 4, 4); e != 0 {
		t.Fatalf("zero vs zero error = %v", e)
	}
	got[0] = 1
	if e := RelativeError(got, want, 4, 4, 4); math.IsInf(e, 0) || math.IsNaN(e) {
		t.Fatalf("zero-reference error not finite: %v", e)
	}
}
