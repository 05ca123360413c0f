// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package akpw

import (
	"testing"

	"golang.org/x/exp/rand"

	"gonum.org/v1/laplacian/graph"
)

func gridGraph(rows, cols int) *graph.CSC {
	n := rows * cols
	t := graph.NewIJV(n)
	idx := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				t.Add(idx(r, c), idx(r, c+1), 1)
			}
			if r+1 < rows {
				t.Add(idx(r, c), idx(r+1, c), 1)
			}
		}
	}
	return t.CompressSum()
}

func pathGraphN(n int) *graph.CSC {
	t := graph.NewIJV(n)
	for i := 0; i < n-1; i++ {
		t.Add(i, i+1, 1)
	}
	return t.CompressSum()
}

func countEdges(g *graph.CSC) int {
	return g.NNZ() / 2
}

func TestBuildIsSpanning(t *testing.T) {
	g := gridGraph(3, 3)
	tree, err := Build(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tree.N() != 9 {
		t.Fatalf("tree.N() = %d, want 9", tree.N())
	}
	if got := countEdges(tree); got != 8 {
		t.Fatalf("tree has %d edges, want 8 (n-1)", got)
	}
	if !connected(tree) {
		t.Fatalf("tree is not connected")
	}
	// Every tree edge weight must match an original edge weight.
	for v := 0; v < tree.N(); v++ {
		rows, vals := tree.Col(v)
		for k, u := range rows {
			if u <= v {
				continue
			}
			if !isTreeEdge(g, v, u) {
				t.Errorf("tree edge (%d,%d) does not exist in original graph", v, u)
			}
			grows, gvals := g.Col(v)
			found := false
			for gk, gu := range grows {
				if gu == u {
					found = true
					if gvals[gk] != vals[k] {
						t.Errorf("tree edge (%d,%d) weight %v, want %v", v, u, vals[k], gvals[gk])
					}
				}
			}
			if !found {
				t.Errorf("tree edge (%d,%d) not found in original graph", v, u)
			}
		}
	}
}

func TestBuildOnPath(t *testing.T) {
	g := pathGraphN(10)
	tree, err := Build(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if got := countEdges(tree); got != 9 {
		t.Fatalf("tree has %d edges, want 9", got)
	}
	// A path graph's only spanning tree is itself.
	for v := 0; v < 10; v++ {
		if tree.Degree(v) != g.Degree(v) {
			t.Errorf("Degree(%d) = %v, want %v (path's tree is the path itself)", v, tree.Degree(v), g.Degree(v))
		}
	}
}

func TestBuildDisconnectedErrors(t *testing.T) {
	tr := graph.NewIJV(4)
	tr.Add(0, 1, 1)
	tr.Add(2, 3, 1)
	g := tr.CompressSum()
	_, err := Build(g, DefaultOptions())
	if err != ErrDisconnected {
		t.Fatalf("Build() error = %v, want ErrDisconnected", err)
	}
}

func TestBuildSingleVertex(t *testing.T) {
	tr := graph.NewIJV(1)
	g := tr.CompressSum()
	tree, err := Build(g, DefaultOptions())
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tree.N() != 1 || tree.NNZ() != 0 {
		t.Fatalf("tree = (N=%d, NNZ=%d), want (1, 0)", tree.N(), tree.NNZ())
	}
}

func TestAverageStretchOnGrid(t *testing.T) {
	g := gridGraph(3, 3)
	opts := Options{Src: rand.New(rand.NewSource(1))}
	tree, err := Build(g, opts)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	s := AverageStretch(tree, g)
	if s <= 0 {
		t.Errorf("AverageStretch() = %v, want > 0", s)
	}
	if s > 3 {
		t.Errorf("AverageStretch() = %v, want <= 3 on a 3x3 grid", s)
	}
}
