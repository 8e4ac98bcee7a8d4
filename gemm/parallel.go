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
	"runtime"
	"sync"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"
)

// Each Multiply call is one fork-join parallel region: a pool is created
// for the call, tiles are statically partitioned across it as contiguous
// flat-index ranges, and the pool is torn down when the region ends. One
// worker owns each tile for its whole K reduction, so boundary tiles being
// smaller only costs balance, never correctness.

func (c Config) workerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// forEachTile runs body for every flat tile index across a fresh pool.
func forEachTile(workers, nTiles int, body func(t int)) error {
	if nTiles == 0 {
		return nil
	}
	pool := workerpool.New(workers)
	defer pool.Close()
	pool.ParallelFor(nTiles, func(start, end int) {
		for t := start; t < end; t++ {
			body(t)
		}
	})
	return nil
}

// scratchPanels is one worker's packed-panel storage: an MB x KB A panel
// and a KB x NB B panel, 64-byte aligned, sized to the nominal block even
// when boundary tiles are smaller. A worker reuses its panels across every
// tile it owns and releases them when the region exits.
type scratchPanels struct {
	a []float32
	b []float32
}

func newScratchPanels(blk Block) (*scratchPanels, error) {
	aElems, err := panelElems(blk.MB, blk.KB)
	if err != nil {
		return nil, err
	}
	bElems, err := panelElems(blk.KB, blk.NB)
	if err != nil {
		return nil, err
	}
	ap, err := alignedSlice(aElems)
	if err != nil {
		return nil, err
	}
	bp, err := alignedSlice(bElems)
	if err != nil {
		return nil, err
	}
	return &scratchPanels{a: ap, b: bp}, nil
}

func (s *scratchPanels) release() {
	s.a = nil
	s.b = nil
}

// forEachTileWithScratch is forEachTile for the packing pipelines: every
// worker acquires its own panels at region entry and releases them on every
// exit path. An acquisition failure poisons only this call; the first error
// is kept and the remaining ranges are skipped.
func forEachTileWithScratch(workers, nTiles int, blk Block, body func(s *scratchPanels, t int)) error {
	if nTiles == 0 {
		return nil
	}
	pool := workerpool.New(workers)
	defer pool.Close()

	var mu sync.Mutex
	var firstErr error
	pool.ParallelFor(nTiles, func(start, end int) {
		s, err := newScratchPanels(blk)
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
			return
		}
		defer s.release()
		for t := start; t < end; t++ {
			body(s, t)
		}
	})
	return firstErr
}
