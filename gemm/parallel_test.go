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
	"runtime"
	"sync"
	"testing"

	"github.com/ajroetker/go-gemm/verify"
)

// Tiles are disjoint in C and the K reduction order inside each tile does
// not depend on the worker count, so every worker count must produce the
// single-threaded result exactly.
func TestMultiplyWorkerCountInvariant(t *testing.T) {
	const m, n, k = 201, 177, 95
	blk := Block{MB: 48, NB: 48, KB: 32}
	rng := rand.New(rand.NewSource(10))
	a := randSlice(rng, m*k)
	b := randSlice(rng, k*n)

	for _, alg := range internalAlgorithms() {
		want := make([]float32, m*n)
		if err := Multiply(alg, m, n, k, a, k, b, n, want, n, blk, Config{Workers: 1}); err != nil {
			t.Fatalf("%s workers=1: %v", alg, err)
		}
		for _, workers := range []int{2, 7, runtime.GOMAXPROCS(0), 0} {
			t.Run(fmt.Sprintf("%s_workers%d", alg, workers), func(t *testing.T) {
				c := make([]float32, m*n)
				if err := Multiply(alg, m, n, k, a, k, b, n, c, n, blk, Config{Workers: workers}); err != nil {
					t.Fatal(err)
				}
				for i := range c {
					if c[i] != want[i] {
						t.Fatalf("c[%d] = %v, want %v (workers=%d)", i, c[i], want[i], workers)
					}
				}
			})
		}
	}
}

// More workers than tiles must not deadlock or misassign work.
func TestMultiplyMoreWorkersThanTiles(t *testing.T) {
	const m, n, k = 20, 20, 20
	rng := rand.New(rand.NewSource(11))
	a := randSlice(rng, m*k)
	b := randSlice(rng, k*n)
	want := make([]float32, m*n)
	refGemm(m, n, k, a, k, b, n, want, n)

	c := make([]float32, m*n)
	blk := Block{MB: 16, NB: 16, KB: 16} // 4 tiles
	if err := Multiply(AlgorithmMicroKernel, m, n, k, a, k, b, n, c, n, blk, Config{Workers: 16}); err != nil {
		t.Fatal(err)
	}
	if !verify.Within(c, want, m, n, n) {
		t.Fatalf("relative error %.3e", verify.RelativeError(c, want, m, n, n))
	}
}

func TestForEachTileVisitsAllOnce(t *testing.T) {
	const nTiles = 37
	var mu sync.Mutex
	visits := make([]int, nTiles)
	err := forEachTile(5, nTiles, func(ti int) {
		mu.Lock()
		visits[ti]++
		mu.Unlock()
	})
	if err != nil {
		t.Fatal(err)
	}
	for ti, v := range visits {
		if v != 1 {
			t.Fatalf("tile %d visited %d times", ti, v)
		}
	}
}

func TestForEachTileWithScratchPanelSizes(t *testing.T) {
	blk := Block{MB: 32, NB: 24, KB: 16}
	err := forEachTileWithScratch(3, 9, blk, func(s *scratchPanels, ti int) {
		if len(s.a) != blk.MB*blk.KB {
			t.Errorf("tile %d: A scratch %d elements, want %d", ti, len(s.a), blk.MB*blk.KB)
		}
		if len(s.b) != blk.KB*blk.NB {
			t.Errorf("tile %d: B scratch %d elements, want %d", ti, len(s.b), blk.KB*blk.NB)
		}
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestWorkerCountDefault(t *testing.T) {
	if got := (Config{}).workerCount(); got != runtime.GOMAXPROCS(0) {
		t.Fatalf("workerCount() = %d, want GOMAXPROCS %d", got, runtime.GOMAXPROCS(0))
	}
	if got := (Config{Workers: 3}).workerCount(); got != 3 {
		t.Fatalf("workerCount() = %d, want 3", got)
	}
}
