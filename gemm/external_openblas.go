// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

//go:build linux && cgo && openblas

package gemm

/*
#cgo LDFLAGS: -lopenblas -lm
#include <stdint.h>

// CBLAS row-major sgemm: C = alpha*A*B + beta*C.
void cblas_sgemm(
    int Order,   // 101 = RowMajor
    int TransA,  // 111 = NoTrans
    int TransB,
    int M, int N, int K,
    float alpha,
    const float *A, int lda,
    const float *B, int ldb,
    float beta,
    float *C, int ldc);
*/
import "C"
import "unsafe"

func init() {
	externalSgemm = func(m, n, k int, a []float32, lda int, b []float32, ldb int, c []float32, ldc int) {
		C.cblas_sgemm(101, 111, 111,
			C.int(m), C.int(n), C.int(k),
			1.0, (*C.float)(unsafe.Pointer(&a[0])), C.int(lda),
			(*C.float)(unsafe.Pointer(&b[0])), C.int(ldb),
			1.0, (*C.float)(unsafe.Pointer(&c[0])), C.int(ldc))
	}
}
