// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import (
	"math"
	"unsafe"

	"github.com/pkg/errors"
)

// scratchAlign is the guaranteed byte alignment of packed panels, one cache
// line, which also covers any vector load width the microkernel uses.
const scratchAlign = 64

const floatSize = int(unsafe.Sizeof(float32(0)))

// alignedSlice returns a float32 slice of length n whose first element sits
// on a scratchAlign-byte boundary. The Go allocator only promises pointer
// alignment, so the slice is carved out of a slightly larger allocation.
func alignedSlice(n int) ([]float32, error) {
	if n <= 0 {
		return nil, &ResourceError{Op: "aligned alloc", Err: errors.Errorf("invalid capacity %d elements", n)}
	}
	if n > math.MaxInt-scratchAlign/floatSize {
		return nil, &ResourceError{Op: "aligned alloc", Err: errors.Errorf("capacity %d elements overflows", n)}
	}
	buf := make([]float32, n+scratchAlign/floatSize)
	addr := uintptr(unsafe.Pointer(&buf[0]))
	off := 0
	if rem := addr % scratchAlign; rem != 0 {
		off = int(scratchAlign-rem) / floatSize
	}
	return buf[off : off+n : off+n], nil
}

// panelElems validates a panel capacity of rows*cols elements, guarding the
// multiplication itself against overflow.
func panelElems(rows, cols int) (int, error) {
	if rows <= 0 || cols <= 0 || rows > math.MaxInt/cols {
		return 0, &ResourceError{Op: "panel size", Err: errors.Errorf("%d x %d panel", rows, cols)}
	}
	return rows * cols, nil
}
