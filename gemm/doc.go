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

// Package gemm implements tiled, packed, register-blocked single-precision
// matrix multiplication.
//
// All algorithms compute C += A * B on row-major float32 matrices addressed
// through explicit leading dimensions, so sub-matrix views work without
// copying. Callers that want a pure product zero C first.
//
// The pipeline builds up in stages, each selectable through Multiply:
//
//   - AlgorithmNaive: triple loop with a vectorized inner sweep. The
//     correctness oracle for everything else.
//   - AlgorithmBlocked: the output is partitioned into MB x NB tiles and the
//     reduction into KB panels, so each tile's working set fits in cache.
//   - AlgorithmPacked: additionally copies each A and B sub-panel into dense
//     per-worker scratch before the sweep, removing strided loads from the
//     inner loop.
//   - AlgorithmMicroKernel: sweeps each tile in 8x8 micro-tiles held in
//     vector accumulators across the whole K panel (register tiling).
//   - AlgorithmExternal: hands the product to an optional BLAS backend when
//     one was linked at build time.
//
// Tiles are the unit of parallel work: each output tile is owned by exactly
// one worker for its whole K reduction, so no two workers ever write the
// same element of C and no locking is needed.
//
// Example:
//
//	a := make([]float32, M*K) // row-major
//	b := make([]float32, K*N)
//	c := make([]float32, M*N) // pre-zeroed for a pure product
//
//	err := gemm.Multiply(gemm.AlgorithmMicroKernel, M, N, K,
//	    a, K, b, N, c, N, gemm.DefaultBlock(), gemm.Config{})
package gemm
