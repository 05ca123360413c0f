// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sdd reduces a symmetric diagonally dominant (SDD) linear
// system to an equivalent Laplacian system, the standard one-extra-
// vertex construction spec.md's Non-goals mention but place outside the
// core: an SDD matrix with nonpositive off-diagonal entries is already a
// Laplacian plus a nonnegative "excess" diagonal; that excess becomes
// edge weight to one additional ground vertex, whose own coordinate is
// dropped from the solution after solving.
package sdd

import "gonum.org/v1/laplacian/graph"

// Entry is one off-diagonal entry (i, j, v) of an SDD matrix, i != j,
// with v required to be <= 0 (an SDD matrix with nonpositive
// off-diagonals is the standard form this reduction assumes; callers
// with positive off-diagonal entries must flip them to negative by a
// diagonal sign-similarity transform before calling Build). Each
// unordered pair should appear at most once; the matrix is assumed
// symmetric.
type Entry struct {
	I, J int
	V    float64
}

// diagDominanceSlack is the tolerance used when checking that every row
// satisfies the weak diagonal dominance invariant diag[i] >= sum of
// |off-diagonal entries in row i|, to absorb floating-point error in
// caller-supplied matrices that are dominant by an exact integer margin.
const diagDominanceSlack = 1e-9

// notSDDError reports why Build rejected an input matrix.
type notSDDError string

func (e notSDDError) Error() string { return string(e) }

const (
	// ErrPositiveOffDiagonal is returned when an Entry has V > 0.
	ErrPositiveOffDiagonal = notSDDError("sdd: off-diagonal entry must be <= 0")
	// ErrNotDiagonallyDominant is returned when some row's diagonal
	// entry is smaller than the sum of its off-diagonal magnitudes.
	ErrNotDiagonallyDominant = notSDDError("sdd: matrix is not diagonally dominant")
)

// Reduction is the Laplacian system equivalent to an n-variable SDD
// system, built over n+1 vertices: vertices [0, n) correspond to the
// original variables, and vertex n is the ground node absorbing each
// row's excess diagonal dominance.
type Reduction struct {
	N         int
	Laplacian *graph.CSC
}

// Build constructs the Laplacian reduction of the SDD system with the
// given off-diagonal entries and diagonal. It returns ErrPositiveOffDiagonal
// or ErrNotDiagonallyDominant if the input does not meet the form this
// reduction requires.
func Build(n int, offDiag []Entry, diag []float64) (*Reduction, error) {
	if len(diag) != n {
		panic("sdd: diag length does not match n")
	}

	t := graph.NewIJV(n + 1)
	rowOffSum := make([]float64, n)
	for _, e := range offDiag {
		if e.V > 0 {
			return nil, ErrPositiveOffDiagonal
		}
		w := -e.V
		if w == 0 {
			continue
		}
		t.Add(e.I, e.J, w)
		rowOffSum[e.I] += w
		rowOffSum[e.J] += w
	}

	for i := 0; i < n; i++ {
		excess := diag[i] - rowOffSum[i]
		if excess < -diagDominanceSlack {
			return nil, ErrNotDiagonallyDominant
		}
		if excess > 0 {
			t.Add(i, n, excess)
		}
	}

	return &Reduction{N: n, Laplacian: t.CompressSum()}, nil
}

// ExtendRHS pads an n-length right-hand side with a zero for the ground
// vertex, producing the (n+1)-length vector the Laplacian solver expects.
func (r *Reduction) ExtendRHS(b []float64) []float64 {
	if len(b) != r.N {
		panic("sdd: rhs length does not match reduction size")
	}
	out := make([]float64, r.N+1)
	copy(out, b)
	return out
}

// Restrict drops the ground vertex's coordinate from a Laplacian solve
// result, returning the n-length solution to the original SDD system.
func (r *Reduction) Restrict(x []float64) []float64 {
	if len(x) != r.N+1 {
		panic("sdd: solution length does not match reduction size")
	}
	return append([]float64(nil), x[:r.N]...)
}
