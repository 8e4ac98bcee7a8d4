// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

// externalSgemm is set by a build-tagged init when an external BLAS backend
// is linked. It computes C += A * B (beta = 1) to match the engine
// contract.
var externalSgemm func(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int)

// externalBackendName names the backend this build can link.
const externalBackendName = "openblas"

// ExternalAvailable reports whether AlgorithmExternal is backed in this
// build.
func ExternalAvailable() bool {
	return externalSgemm != nil
}

func multiplyExternal(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int) error {
	if externalSgemm == nil {
		return &UnavailableBackendError{Backend: externalBackendName}
	}
	externalSgemm(m, n, k, a, lda, b, ldb, c, ldc)
	return nil
}
