// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import (
	"errors"
	"math"
	"testing"
	"unsafe"
)

func TestAlignedSliceAlignment(t *testing.T) {
	for _, n := range []int{1, 7, 16, 4096, 256 * 256} {
		s, err := alignedSlice(n)
		if err != nil {
			t.Fatalf("alignedSlice(%d): %v", n, err)
		}
		if len(s) != n {
			t.Fatalf("alignedSlice(%d): len %d", n, len(s))
		}
		addr := uintptr(unsafe.Pointer(&s[0]))
		if addr%scratchAlign != 0 {
			t.Fatalf("alignedSlice(%d): address %#x not %d-byte aligned", n, addr, scratchAlign)
		}
	}
}

func TestAlignedSliceInvalid(t *testing.T) {
	for _, n := range []int{0, -1} {
		if _, err := alignedSlice(n); err == nil {
			t.Fatalf("alignedSlice(%d): expected error", n)
		}
	}
	_, err := alignedSlice(math.MaxInt)
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("alignedSlice(MaxInt): got %v, want ResourceError", err)
	}
}

func TestPanelElems(t *testing.T) {
	if n, err := panelElems(256, 256); err != nil || n != 256*256 {
		t.Fatalf("panelElems(256, 256) = %d, %v", n, err)
	}
	if _, err := panelElems(0, 256); err == nil {
		t.Fatal("panelElems(0, 256): expected error")
	}
	if _, err := panelElems(math.MaxInt/2, 3); err == nil {
		t.Fatal("overflowing panel: expected error")
	}
}
