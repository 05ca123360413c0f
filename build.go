// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package laplacian solves symmetric diagonally dominant linear systems
// whose coefficient matrix is the Laplacian of an undirected weighted
// graph, in near-linear time: Build constructs a low-stretch spanning
// tree (package akpw), an approximate LDLᵀ-style factorization from it
// (package elim), and returns a Solver that uses the factorization as a
// preconditioner for conjugate gradients (package pcg) on Solve calls.
// Package sdd extends this to general SDD systems via the standard
// one-extra-vertex reduction.
package laplacian

import (
	"gonum.org/v1/laplacian/akpw"
	"gonum.org/v1/laplacian/cond"
	"gonum.org/v1/laplacian/elim"
	"gonum.org/v1/laplacian/graph"
	"gonum.org/v1/laplacian/order"
	"gonum.org/v1/laplacian/pcg"
)

// component holds the per-connected-component state a Solver needs to
// solve independently and reassemble by index, per spec §4.9/§7 item 5.
type component struct {
	vertices []int
	g        *graph.CSC
	ldl      *elim.LDLinv // nil for a trivial single-vertex component
}

// Solver holds a completed build: one approximate factorization per
// connected component of the input graph, ready for repeated Solve
// calls. Solve does not modify the Solver and does not draw from the
// BuildOptions.Src used to build it.
type Solver struct {
	n          int
	components []component
	kappa      float64
	kappaOK    bool
	logger     Logger
}

// Build constructs a Solver for g, an immutable weighted undirected
// graph that the solver never mutates. g need not be connected: Build
// decomposes it into connected components and builds a factorization
// for each independently.
func Build(g *graph.CSC, opts BuildOptions) (*Solver, error) {
	if opts.Src == nil {
		opts.Src = DefaultBuildOptions().Src
	}
	logEvent(opts.Logger, "build.start", "n", g.N(), "nnz", g.NNZ())

	groups := pcg.Components(g)
	comps := make([]component, len(groups))
	for ci, vs := range groups {
		sub := pcg.Subgraph(g, vs)
		c := component{vertices: vs, g: sub}
		if sub.N() > 1 {
			tree, err := akpw.Build(sub, akpw.Options{Src: opts.Src})
			if err != nil {
				// sub is connected by construction (Components only
				// groups vertices reachable from one another), so this
				// would indicate an internal inconsistency rather than
				// a user error.
				return nil, err
			}
			capacity := opts.PoolCapacity
			if capacity == 0 {
				capacity = estimateCapacity(sub)
			}
			switch opts.Sampler {
			case VertexSampler:
				ord := order.Build(order.NewTree(tree, 0), sub, opts.Order)
				c.ldl = elim.VertexEliminate(sub, ord, capacity, opts.Src)
			default:
				c.ldl = elim.EdgeEliminate(sub, capacity, opts.Src)
			}
		}
		comps[ci] = c
		logEvent(opts.Logger, "build.component", "index", ci, "size", len(vs))
	}

	s := &Solver{n: g.N(), components: comps, logger: opts.Logger}

	if opts.ReturnConditionNumber {
		if len(comps) == 1 && comps[0].ldl != nil {
			s.kappa, s.kappaOK = cond.Estimate(comps[0].g, comps[0].ldl, cond.Options{
				Src:      opts.Src,
				MaxIters: 100,
				Tol:      opts.CondTolerance,
			})
		}
	}

	logEvent(opts.Logger, "build.done", "components", len(comps))
	return s, nil
}

// estimateCapacity returns a starting pool size proportional to the
// number of edges, per spec §4.1's "a starting estimate proportional to
// m is sufficient" guidance; a generous constant factor absorbs the
// vertex sampler's clique fill and the edge sampler's split fill without
// triggering the pool-exhaustion panic on ordinary inputs.
func estimateCapacity(g *graph.CSC) int {
	c := 8*g.NNZ() + 64
	return c
}

// N returns the number of vertices the Solver was built for.
func (s *Solver) N() int { return s.n }

// ConditionNumber returns the condition-number proxy computed during
// Build when BuildOptions.ReturnConditionNumber was set, and whether a
// usable estimate was obtained; it is only ever attempted for connected
// graphs (see package cond).
func (s *Solver) ConditionNumber() (kappa float64, ok bool) {
	return s.kappa, s.kappaOK
}
