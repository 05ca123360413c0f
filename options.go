// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

import (
	"time"

	"golang.org/x/exp/rand"

	"gonum.org/v1/laplacian/order"
)

// Sampler selects the approximate-factorization variant a Build call
// uses.
type Sampler int

const (
	// EdgeSampler uses the edgeElim heuristic (spec §4.7): faster,
	// always eliminates the current minimum-degree vertex.
	EdgeSampler Sampler = iota
	// VertexSampler uses the full vertex-elimination clique estimator
	// (spec §4.6), driven by an elimination ordering computed up front
	// from the low-stretch tree.
	VertexSampler
)

// BuildOptions configures a Build call.
type BuildOptions struct {
	// Order selects the elimination ordering policy used when Sampler
	// is VertexSampler; ignored for EdgeSampler, which always pops the
	// current minimum-degree vertex from its own live priority queue.
	Order order.Policy
	// Sampler selects the factorization variant.
	Sampler Sampler
	// PoolCapacity sizes the pooled linked-list arena backing
	// elimination. Zero selects an estimate proportional to the number
	// of edges, per spec §4.1's sizing guidance.
	PoolCapacity int
	// Src supplies randomness for tree construction and sampling. If
	// nil, a freshly seeded source is used, matching spec §6's "caller
	// sets the global PRNG before each call it wants reproducible" by
	// exposing the source as an explicit, threaded parameter instead
	// (see DESIGN.md for why this solver threads *rand.Rand rather than
	// relying on global PRNG state).
	Src *rand.Rand
	// ReturnConditionNumber requests that Build also estimate a
	// condition-number proxy via package cond; see Solver.ConditionNumber.
	ReturnConditionNumber bool
	// CondTolerance is the convergence tolerance used by the condition
	// number estimate's power iteration fallback.
	CondTolerance float64
	// Logger receives optional build diagnostics; nil disables logging.
	Logger Logger
}

// DefaultBuildOptions returns edgeElim sampling, an auto-sized pool, a
// deterministically seeded RNG, and no condition-number estimate.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		Order:         order.ApproxDegree,
		Sampler:       EdgeSampler,
		Src:           rand.New(rand.NewSource(1)),
		CondTolerance: 1e-8,
	}
}

// SolveOptions configures a Solver.Solve call.
type SolveOptions struct {
	// Tol is the target relative residual.
	Tol float64
	// MaxIters bounds the number of PCG iterations.
	MaxIters int
	// MaxTime bounds wall-clock time spent iterating; zero means no
	// limit.
	MaxTime time.Duration
	// Logger receives optional per-solve diagnostics; nil disables
	// logging.
	Logger Logger
}

// DefaultSolveOptions returns Tol: 1e-6, MaxIters: 1000, no time limit.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{Tol: 1e-6, MaxIters: 1000}
}

// Stats reports the outcome of a Solve call.
type Stats struct {
	// Converged reports whether every connected component reached Tol.
	Converged bool
	// Iterations is the largest per-component iteration count.
	Iterations int
	// ResidualNorm is the largest per-component relative residual.
	ResidualNorm float64
}
