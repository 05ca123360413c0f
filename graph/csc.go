// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package graph provides the sparse storage types used throughout the
// solver: a compressed-sparse-column (CSC) adjacency representation for
// weighted undirected graphs, and an edge-list (IJV) triplet form used
// during construction and cluster contraction.
package graph

import "math"

// CSC is a weighted undirected graph stored in compressed-sparse-column
// form. The pattern is required to be symmetric: if j appears in column i
// with weight w, then i appears in column j with the same weight w. No
// self-loops are stored, and within each column rowval entries are sorted
// strictly increasing.
//
// CSC is immutable once constructed; callers that need a modified graph
// construct a new CSC via IJV.CompressMax or IJV.CompressSum instead of
// editing one in place.
type CSC struct {
	n      int
	colptr []int
	rowval []int
	nzval  []float64
}

// NewCSC returns a CSC adjacency on n vertices from the given column
// pointer, row index, and value arrays. NewCSC panics if the arrays are
// inconsistent in length or if the symmetry/self-loop/ordering invariants
// are violated; see Validate for the checks performed.
func NewCSC(n int, colptr, rowval []int, nzval []float64) *CSC {
	if n <= 0 {
		panic("graph: non-positive vertex count")
	}
	if len(colptr) != n+1 {
		panic("graph: colptr has wrong length")
	}
	if len(rowval) != len(nzval) {
		panic("graph: rowval/nzval length mismatch")
	}
	if colptr[n] != len(rowval) {
		panic("graph: colptr does not cover rowval")
	}
	g := &CSC{n: n, colptr: colptr, rowval: rowval, nzval: nzval}
	if err := g.Validate(); err != nil {
		panic("graph: " + err.Error())
	}
	return g
}

// N returns the number of vertices.
func (g *CSC) N() int { return g.n }

// NNZ returns the number of stored (directed) entries, i.e. twice the
// number of undirected edges.
func (g *CSC) NNZ() int { return len(g.rowval) }

// Col returns the neighbor indices and edge weights stored for column v.
// The returned slices alias g's internal storage and must not be modified.
func (g *CSC) Col(v int) (rowval []int, nzval []float64) {
	lo, hi := g.colptr[v], g.colptr[v+1]
	return g.rowval[lo:hi], g.nzval[lo:hi]
}

// Degree returns the weighted degree of vertex v, i.e. the sum of the
// weights of edges incident on v.
func (g *CSC) Degree(v int) float64 {
	_, w := g.Col(v)
	var d float64
	for _, wi := range w {
		d += wi
	}
	return d
}

// UnweightedDegree returns the number of distinct neighbors of v.
func (g *CSC) UnweightedDegree(v int) int {
	return g.colptr[v+1] - g.colptr[v]
}

// Validate checks the structural invariants described in the CSC doc
// comment: symmetric pattern and weights, no self-loops, strictly
// increasing row indices per column, finite positive weights.
func (g *CSC) Validate() error {
	for v := 0; v < g.n; v++ {
		rows, vals := g.Col(v)
		prev := -1
		for k, u := range rows {
			if u == v {
				return errSelfLoop
			}
			if u <= prev {
				return errUnsorted
			}
			prev = u
			w := vals[k]
			if math.IsNaN(w) || math.IsInf(w, 0) || w <= 0 {
				return errBadWeight
			}
			if !g.hasEdge(u, v, w) {
				return errAsymmetric
			}
		}
	}
	return nil
}

// hasEdge reports whether column u contains an entry for neighbor v with
// weight w (used only by Validate's symmetry check).
func (g *CSC) hasEdge(u, v int, w float64) bool {
	rows, vals := g.Col(u)
	lo, hi := 0, len(rows)
	for lo < hi {
		mid := (lo + hi) / 2
		if rows[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo < len(rows) && rows[lo] == v && vals[lo] == w
}

type cscError string

func (e cscError) Error() string { return string(e) }

const (
	errSelfLoop   cscError = "self-loop present"
	errUnsorted   cscError = "column not sorted"
	errBadWeight  cscError = "non-finite or non-positive weight"
	errAsymmetric cscError = "asymmetric pattern or weight"
)

// LMulVec computes dst = L*x where L = D - A is the graph Laplacian of g,
// without materializing L. dst and x must both have length g.N() and must
// not alias.
func (g *CSC) LMulVec(dst, x []float64) {
	if len(dst) != g.n || len(x) != g.n {
		panic("graph: vector length mismatch")
	}
	for v := 0; v < g.n; v++ {
		rows, vals := g.Col(v)
		var acc float64
		for k, u := range rows {
			acc += vals[k] * (x[v] - x[u])
			_ = u
		}
		dst[v] = acc
	}
}
