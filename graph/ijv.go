// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package graph

import "sort"

// IJV is an edge-list ("triplet") representation of a weighted undirected
// graph on N vertices. Entries are unordered pairs (I[k], J[k]) with
// weight V[k]; duplicate pairs are permitted and are resolved by Compress.
//
// IJV is the form used while constructing a graph (e.g. an induced
// subgraph in package pcg, or the tree returned by package akpw), before
// normalising into the
// immutable CSC representation used by the rest of the solver.
type IJV struct {
	N int
	I []int
	J []int
	V []float64
}

// NewIJV returns an empty triplet list on n vertices.
func NewIJV(n int) *IJV {
	if n <= 0 {
		panic("graph: non-positive vertex count")
	}
	return &IJV{N: n}
}

// Add appends an unordered edge (i, j) with weight v. i and j must be
// distinct and within [0, N); v must be a finite positive weight. Add does
// not check for duplicates; duplicates are resolved at Compress time.
func (t *IJV) Add(i, j int, v float64) {
	if i == j {
		panic("graph: self-loop")
	}
	if i < 0 || i >= t.N || j < 0 || j >= t.N {
		panic("graph: vertex index out of range")
	}
	if i > j {
		i, j = j, i
	}
	t.I = append(t.I, i)
	t.J = append(t.J, j)
	t.V = append(t.V, v)
}

// Len returns the number of stored (possibly duplicate) entries.
func (t *IJV) Len() int { return len(t.V) }

// CompressSum normalises the triplet list into a CSC graph, summing the
// weights of duplicate unordered pairs. This is the combination rule used
// when assembling Laplacian edge weights from several sources (e.g.
// quotient-graph contraction feeding back into the recursive Laplacian).
func (t *IJV) CompressSum() *CSC {
	return t.compress(func(a, b float64) float64 { return a + b })
}

// CompressMax normalises the triplet list into a CSC graph, taking the
// maximum weight among duplicate unordered pairs. This is the combination
// rule AKPW uses when contracting parallel between-cluster edges into a
// single quotient edge (spec: "weight = max of parallel edges").
func (t *IJV) CompressMax() *CSC {
	return t.compress(func(a, b float64) float64 {
		if a > b {
			return a
		}
		return b
	})
}

// compress performs a two-pass count-then-place count sort (no hash maps,
// per the design note on avoiding them for CSC assembly) keyed by the
// smaller-endpoint column, merging duplicates with combine, and emits the
// symmetric CSC form.
func (t *IJV) compress(combine func(a, b float64) float64) *CSC {
	n := t.N
	type entry struct {
		i, j int
		v    float64
	}
	// Sort by (i, j) so duplicates become adjacent.
	idx := make([]int, len(t.V))
	for k := range idx {
		idx[k] = k
	}
	sort.Slice(idx, func(a, b int) bool {
		ia, ib := idx[a], idx[b]
		if t.I[ia] != t.I[ib] {
			return t.I[ia] < t.I[ib]
		}
		return t.J[ia] < t.J[ib]
	})

	var merged []entry
	for _, k := range idx {
		i, j, v := t.I[k], t.J[k], t.V[k]
		if len(merged) > 0 {
			last := &merged[len(merged)-1]
			if last.i == i && last.j == j {
				last.v = combine(last.v, v)
				continue
			}
		}
		merged = append(merged, entry{i, j, v})
	}

	// Pass 1: count degree of each column from both directions.
	count := make([]int, n)
	for _, e := range merged {
		count[e.i]++
		count[e.j]++
	}
	colptr := make([]int, n+1)
	for v := 0; v < n; v++ {
		colptr[v+1] = colptr[v] + count[v]
	}
	nnz := colptr[n]
	rowval := make([]int, nnz)
	nzval := make([]float64, nnz)

	// Pass 2: place entries using a cursor per column, then sort each
	// column's run (cheap: columns are typically small).
	cursor := make([]int, n)
	copy(cursor, colptr[:n])
	place := func(col, row int, w float64) {
		p := cursor[col]
		rowval[p] = row
		nzval[p] = w
		cursor[col]++
	}
	for _, e := range merged {
		place(e.i, e.j, e.v)
		place(e.j, e.i, e.v)
	}
	for v := 0; v < n; v++ {
		lo, hi := colptr[v], colptr[v+1]
		sortColumn(rowval[lo:hi], nzval[lo:hi])
	}
	return NewCSC(n, colptr, rowval, nzval)
}

// sortColumn sorts a column's (rowval, nzval) pair by rowval, in place.
func sortColumn(rows []int, vals []float64) {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return rows[idx[a]] < rows[idx[b]] })
	rcopy := append([]int(nil), rows...)
	vcopy := append([]float64(nil), vals...)
	for i, k := range idx {
		rows[i] = rcopy[k]
		vals[i] = vcopy[k]
	}
}
