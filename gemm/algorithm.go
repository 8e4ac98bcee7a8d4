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

// Algorithm selects one of the multiply pipelines. The set is closed:
// Multiply rejects any other value with a ConfigurationError.
type Algorithm int

const (
	// AlgorithmNaive is the triple-loop reference.
	AlgorithmNaive Algorithm = iota
	// AlgorithmBlocked tiles the output and the reduction for cache reuse.
	AlgorithmBlocked
	// AlgorithmPacked adds dense panel packing to the blocked sweep.
	AlgorithmPacked
	// AlgorithmMicroKernel adds 8x8 register tiling on packed panels.
	AlgorithmMicroKernel
	// AlgorithmExternal delegates to the optional BLAS backend.
	AlgorithmExternal

	numAlgorithms
)

var algorithmNames = [numAlgorithms]string{
	AlgorithmNaive:       "naive",
	AlgorithmBlocked:     "blocked",
	AlgorithmPacked:      "packed",
	AlgorithmMicroKernel: "microkernel",
	AlgorithmExternal:    "external",
}

func (a Algorithm) String() string {
	if a < 0 || a >= numAlgorithms {
		return "unknown"
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a name to its Algorithm. Unrecognized names fail with
// a ConfigurationError.
func ParseAlgorithm(name string) (Algorithm, error) {
	for alg, s := range algorithmNames {
		if s == name {
			return Algorithm(alg), nil
		}
	}
	return 0, configErrorf("unknown algorithm %q", name)
}

// Algorithms lists the valid selectors in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, numAlgorithms)
	for i := range out {
		out[i] = Algorithm(i)
	}
	return out
}

// Multiply computes C += A * B with the selected pipeline.
//
// A is M x K at leading dimension lda, B is K x N at ldb, C is M x N at
// ldc, all row-major float32. The caller owns every buffer and pre-zeros C
// when a pure product is wanted. blk configures the tile sizes (ignored by
// AlgorithmNaive and AlgorithmExternal, which have no blocking to
// configure), cfg the worker count.
//
// Errors are fatal to this call only: ConfigurationError for selectors
// outside the enum or non-positive block sizes, ResourceError when scratch
// panels cannot be acquired, UnavailableBackendError when
// AlgorithmExternal is requested without a linked backend.
func Multiply(alg Algorithm, m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int, blk Block, cfg Config) error {
	checkOperands(m, n, k, a, lda, b, ldb, c, ldc)
	if m == 0 || n == 0 || k == 0 {
		return nil
	}
	switch alg {
	case AlgorithmNaive:
		return multiplyNaive(m, n, k, a, lda, b, ldb, c, ldc, cfg)
	case AlgorithmBlocked, AlgorithmPacked, AlgorithmMicroKernel:
		if !blk.valid() {
			return configErrorf("block sizes must be positive, got MB=%d NB=%d KB=%d", blk.MB, blk.NB, blk.KB)
		}
		switch alg {
		case AlgorithmBlocked:
			return multiplyBlocked(m, n, k, a, lda, b, ldb, c, ldc, blk, cfg)
		case AlgorithmPacked:
			return multiplyPacked(m, n, k, a, lda, b, ldb, c, ldc, blk, cfg)
		default:
			return multiplyMicroKernel(m, n, k, a, lda, b, ldb, c, ldc, blk, cfg)
		}
	case AlgorithmExternal:
		return multiplyExternal(m, n, k, a, lda, b, ldb, c, ldc)
	default:
		return configErrorf("algorithm selector %d outside the closed set", int(alg))
	}
}

// MultiplyMatrix is Multiply over Matrix views: C += A * B. Dimension
// mismatches between the views panic, like every other operand misuse.
func MultiplyMatrix(alg Algorithm, a, b, c Matrix, blk Block, cfg Config) error {
	if a.Cols != b.Rows || c.Rows != a.Rows || c.Cols != b.Cols {
		panic("gemm: dimension mismatch")
	}
	return Multiply(alg, c.Rows, c.Cols, a.Cols,
		a.Data, a.Stride, b.Data, b.Stride, c.Data, c.Stride, blk, cfg)
}
