// Copyright 2025 The go-gemm Authors. SPDX-License-Identifier: Apache-2.0

package gemm

import "testing"

func TestMatrixView(t *testing.T) {
	m := NewMatrix(6, 5)
	for i := 0; i < 6; i++ {
		for j := 0; j < 5; j++ {
			m.Set(i, j, float32(10*i+j))
		}
	}
	v := m.View(2, 1, 3, 3)
	if v.Rows != 3 || v.Cols != 3 || v.Stride != m.Stride {
		t.Fatalf("view shape %dx%d stride %d", v.Rows, v.Cols, v.Stride)
	}
	if got := v.At(0, 0); got != 21 {
		t.Fatalf("v.At(0,0) = %v, want 21", got)
	}
	// Writes through the view land in the parent.
	v.Set(1, 2, -1)
	if got := m.At(3, 3); got != -1 {
		t.Fatalf("m.At(3,3) = %v after view write, want -1", got)
	}
}

func TestViewPanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	m := NewMatrix(4, 4)
	_ = m.View(2, 2, 3, 3)
}

func TestBlockValid(t *testing.T) {
	if !DefaultBlock().valid() {
		t.Fatal("default block rejected")
	}
	for _, blk := range []Block{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-1, 2, 2}} {
		if blk.valid() {
			t.Fatalf("block %+v accepted", blk)
		}
	}
}
