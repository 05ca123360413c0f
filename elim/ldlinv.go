// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package elim implements the two approximate Gaussian elimination
// variants (a full vertex-elimination sampler and the faster edgeElim
// heuristic) that together produce an LDLinv descriptor, plus the
// triangular solve that uses it as a preconditioner.
package elim

// LDLinv is the compact approximate-factorization descriptor produced by
// both VertexEliminate and EdgeEliminate. For each eliminated vertex v,
// visited in Order, its column occupies ColPtr[k]:ColPtr[k+1] of Row and F
// (k is v's position in Order): Row holds the neighbors the eliminated
// vertex's weight is redistributed to, and F the fraction of the running
// quantity sent to each, with the final entry of every column satisfying
// F == 1 (a sink absorbing whatever mass remains). D holds the diagonal
// weight recorded for every vertex, indexed by vertex id rather than by
// position in Order.
type LDLinv struct {
	N      int
	Order  []int
	ColPtr []int
	Row    []int
	F      []float64
	D      []float64
}

// builder accumulates LDLinv columns in elimination order. Because both
// samplers process vertices strictly in Order and finish each vertex's
// column before moving to the next, columns can simply be appended as
// they are produced; no count-sort pass is needed (contrast with IJV's
// CompressSum/CompressMax, which must support arbitrary insertion order).
type builder struct {
	n      int
	order  []int
	colptr []int
	row    []int
	f      []float64
	d      []float64
}

func newBuilder(n int) *builder {
	return &builder{
		n:      n,
		colptr: []int{0},
		d:      make([]float64, n),
	}
}

// addColumn appends one finished column for vertex v: entries are pairs of
// (row[i], f[i]) already ordered with the sink entry (f == 1) last, and
// diag is v's recorded diagonal weight.
func (b *builder) addColumn(v int, rows []int, fs []float64, diag float64) {
	b.order = append(b.order, v)
	b.row = append(b.row, rows...)
	b.f = append(b.f, fs...)
	b.colptr = append(b.colptr, len(b.row))
	b.d[v] = diag
}

func (b *builder) build() *LDLinv {
	return &LDLinv{
		N:      b.n,
		Order:  b.order,
		ColPtr: b.colptr,
		Row:    b.row,
		F:      b.f,
		D:      b.d,
	}
}

// normalizeFractions rescales weights (already positive, already ordered
// to match rows) into fractions of their own running sum, forcing the
// final fraction to exactly 1 so that the column sums its neighbors'
// shares to the eliminated vertex's full diagonal weight without
// accumulating floating-point drift into the final entry, matching the
// "final entry per column has f = 1" invariant.
func normalizeFractions(weights []float64, wSum float64) []float64 {
	n := len(weights)
	fs := make([]float64, n)
	if n == 0 {
		return fs
	}
	remaining := wSum
	for i := 0; i < n-1; i++ {
		fs[i] = weights[i] / remaining
		remaining -= weights[i]
	}
	fs[n-1] = 1
	return fs
}
