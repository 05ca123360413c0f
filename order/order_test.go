// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package order

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gonum.org/v1/laplacian/graph"
)

// pathTree returns a CSC spanning tree on n vertices shaped as a path
// 0-1-2-...-n-1, so that NewTree rooted at 0 produces a single chain with
// exactly one leaf (n-1).
func pathTree(n int) *graph.CSC {
	t := graph.NewIJV(n)
	for i := 0; i < n-1; i++ {
		t.Add(i, i+1, 1)
	}
	return t.CompressSum()
}

// starGraph returns a CSC graph shaped as a star centered at 0, so that
// NewTree rooted at 0 has n-1 leaves all at depth 1.
func starGraph(n int) *graph.CSC {
	t := graph.NewIJV(n)
	for i := 1; i < n; i++ {
		t.Add(0, i, 1)
	}
	return t.CompressSum()
}

func isPermutation(order []int, n int) bool {
	if len(order) != n {
		return false
	}
	seen := make([]bool, n)
	for _, v := range order {
		if v < 0 || v >= n || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestNewTreeOnPath(t *testing.T) {
	g := pathTree(5)
	tr := NewTree(g, 0)
	wantParent := []int{0, 0, 1, 2, 3}
	if diff := cmp.Diff(wantParent, tr.Parent); diff != "" {
		t.Errorf("Parent mismatch (-want +got):\n%s", diff)
	}
	wantNumChildren := []int{1, 1, 1, 1, 0}
	if diff := cmp.Diff(wantNumChildren, tr.NumChildren); diff != "" {
		t.Errorf("NumChildren mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildMinDegreePeelsLeavesFirst(t *testing.T) {
	g := pathTree(6)
	tr := NewTree(g, 0)
	order := Build(tr, g, MinDegree)
	if !isPermutation(order, 6) {
		t.Fatalf("Build() = %v, not a permutation of [0,6)", order)
	}
	// In a path rooted at 0, leaf-peeling must eliminate vertex 5 first
	// (the only initial leaf) and the root last.
	if order[0] != 5 {
		t.Errorf("order[0] = %d, want 5 (the only initial leaf)", order[0])
	}
	if order[len(order)-1] != 0 {
		t.Errorf("order[last] = %d, want 0 (the root)", order[len(order)-1])
	}
	// Every vertex must be eliminated strictly before its parent.
	pos := make([]int, 6)
	for i, v := range order {
		pos[v] = i
	}
	for v := 1; v < 6; v++ {
		if pos[v] >= pos[tr.Parent[v]] {
			t.Errorf("vertex %d eliminated at or after its parent %d", v, tr.Parent[v])
		}
	}
}

func TestBuildMinDegreeOnStarEliminatesLeavesBeforeCenter(t *testing.T) {
	g := starGraph(5)
	tr := NewTree(g, 0)
	order := Build(tr, g, MinDegree)
	if !isPermutation(order, 5) {
		t.Fatalf("Build() = %v, not a permutation of [0,5)", order)
	}
	if order[len(order)-1] != 0 {
		t.Errorf("order[last] = %d, want 0 (the center, eliminated last)", order[len(order)-1])
	}
}

func TestBuildApproxDegreeIsPermutation(t *testing.T) {
	g := starGraph(8)
	tr := NewTree(g, 0)
	order := Build(tr, g, ApproxDegree)
	if !isPermutation(order, 8) {
		t.Fatalf("Build() = %v, not a permutation of [0,8)", order)
	}
	if order[len(order)-1] != 0 {
		t.Errorf("order[last] = %d, want 0 (the center, eliminated last)", order[len(order)-1])
	}
}

func TestBuildDFSIsPermutationAndRespectsParents(t *testing.T) {
	g := pathTree(7)
	tr := NewTree(g, 0)
	order := Build(tr, g, DFS)
	if !isPermutation(order, 7) {
		t.Fatalf("Build() = %v, not a permutation of [0,7)", order)
	}
	pos := make([]int, 7)
	for i, v := range order {
		pos[v] = i
	}
	for v := 1; v < 7; v++ {
		if pos[v] >= pos[tr.Parent[v]] {
			t.Errorf("vertex %d eliminated at or after its parent %d", v, tr.Parent[v])
		}
	}
}
