// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdd

import "testing"

func TestBuildStrictlyDominantRowGetsGroundEdge(t *testing.T) {
	// A single variable with M = [[3]] (no off-diagonal neighbors) is
	// strictly dominant by its full diagonal; the whole weight 3 becomes
	// an edge to the ground vertex.
	red, err := Build(1, nil, []float64{3})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if red.Laplacian.N() != 2 {
		t.Fatalf("Laplacian.N() = %d, want 2", red.Laplacian.N())
	}
	if got := red.Laplacian.Degree(0); got != 3 {
		t.Errorf("Laplacian.Degree(0) = %v, want 3", got)
	}
}

func TestBuildExactlyDominantRowGetsNoGroundEdge(t *testing.T) {
	// M = [[2,-1,-1],[-1,2,-1],[-1,-1,2]]: each row is exactly dominant
	// (diag == sum of off-diagonal magnitudes), so it is already a
	// genuine Laplacian and no ground edges should appear.
	off := []Entry{{0, 1, -1}, {0, 2, -1}, {1, 2, -1}}
	red, err := Build(3, off, []float64{2, 2, 2})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := red.Laplacian.Degree(3); got != 0 {
		t.Errorf("ground vertex degree = %v, want 0", got)
	}
}

func TestBuildRejectsPositiveOffDiagonal(t *testing.T) {
	_, err := Build(2, []Entry{{0, 1, 1}}, []float64{2, 2})
	if err != ErrPositiveOffDiagonal {
		t.Fatalf("Build() error = %v, want ErrPositiveOffDiagonal", err)
	}
}

func TestBuildRejectsNonDominantRow(t *testing.T) {
	_, err := Build(2, []Entry{{0, 1, -5}}, []float64{1, 5})
	if err != ErrNotDiagonallyDominant {
		t.Fatalf("Build() error = %v, want ErrNotDiagonallyDominant", err)
	}
}

func TestExtendAndRestrictRoundTrip(t *testing.T) {
	red, err := Build(1, nil, []float64{3})
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	b := []float64{5}
	ext := red.ExtendRHS(b)
	if len(ext) != 2 || ext[0] != 5 || ext[1] != 0 {
		t.Fatalf("ExtendRHS() = %v, want [5 0]", ext)
	}
	x := red.Restrict([]float64{1, 2})
	if len(x) != 1 || x[0] != 1 {
		t.Fatalf("Restrict() = %v, want [1]", x)
	}
}
