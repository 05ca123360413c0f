// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import (
	"testing"
)

// path4 returns the unweighted path graph 0-1-2-3.
func path4() *CSC {
	t := NewIJV(4)
	t.Add(0, 1, 1)
	t.Add(1, 2, 1)
	t.Add(2, 3, 1)
	return t.CompressSum()
}

func TestCompressSumSymmetric(t *testing.T) {
	g := path4()
	if g.N() != 4 {
		t.Fatalf("N() = %d, want 4", g.N())
	}
	if g.NNZ() != 6 {
		t.Fatalf("NNZ() = %d, want 6", g.NNZ())
	}
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
	if d := g.Degree(0); d != 1 {
		t.Errorf("Degree(0) = %v, want 1", d)
	}
	if d := g.Degree(1); d != 2 {
		t.Errorf("Degree(1) = %v, want 2", d)
	}
}

func TestCompressSumDuplicates(t *testing.T) {
	tr := NewIJV(2)
	tr.Add(0, 1, 1.5)
	tr.Add(0, 1, 2.5)
	g := tr.CompressSum()
	if d := g.Degree(0); d != 4 {
		t.Errorf("Degree(0) = %v, want 4 (summed)", d)
	}
}

func TestCompressMaxDuplicates(t *testing.T) {
	tr := NewIJV(2)
	tr.Add(0, 1, 1.5)
	tr.Add(0, 1, 2.5)
	g := tr.CompressMax()
	if d := g.Degree(0); d != 2.5 {
		t.Errorf("Degree(0) = %v, want 2.5 (max)", d)
	}
}

func TestLMulVecPath(t *testing.T) {
	g := path4()
	x := []float64{1.5, 0.5, -0.5, -1.5}
	dst := make([]float64, 4)
	g.LMulVec(dst, x)
	want := []float64{1, 0, 0, -1}
	for i := range want {
		if diff := dst[i] - want[i]; diff > 1e-12 || diff < -1e-12 {
			t.Errorf("LMulVec()[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestNewCSCPanicsOnSelfLoop(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on self-loop")
		}
	}()
	NewCSC(1, []int{0, 1}, []int{0}, []float64{1})
}

func TestNewCSCPanicsOnAsymmetry(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on asymmetric pattern")
		}
	}()
	// vertex 0 points to 1, but vertex 1 has no entries.
	NewCSC(2, []int{0, 1, 1}, []int{1}, []float64{1})
}
