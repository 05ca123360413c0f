// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

import "gonum.org/v1/laplacian/pcg"

// Solve returns an approximate solution x to L x = b, where L is the
// Laplacian the Solver was built from. b must have length s.N(); its
// per-component mean is removed before iterating (each connected
// component's own null space is its own indicator vector, not a single
// global all-ones vector), and the corresponding slice of x is
// re-centered to zero mean on return, per spec §8's null-space-
// correctness property.
func (s *Solver) Solve(b []float64, opts SolveOptions) ([]float64, Stats) {
	if len(b) != s.n {
		panic("laplacian: rhs length does not match solver size")
	}
	if opts.MaxIters == 0 {
		d := DefaultSolveOptions()
		opts.Tol, opts.MaxIters, opts.MaxTime = d.Tol, d.MaxIters, d.MaxTime
	}

	x := make([]float64, s.n)
	stats := Stats{Converged: true}

	pcgOpts := pcg.Options{Tol: opts.Tol, MaxIters: opts.MaxIters, MaxTime: opts.MaxTime}

	for _, c := range s.components {
		bsub := make([]float64, len(c.vertices))
		for i, v := range c.vertices {
			bsub[i] = b[v]
		}
		center(bsub)

		var xsub []float64
		if c.ldl == nil {
			// A single isolated vertex: L restricted to {v} is the 1x1
			// zero matrix, so the only solution compatible with a
			// mean-zero right-hand side is the zero vector.
			xsub = make([]float64, 1)
		} else {
			res := pcg.Solve(c.g, c.ldl, bsub, pcgOpts)
			xsub = res.X
			if !res.Converged {
				stats.Converged = false
			}
			if res.Iterations > stats.Iterations {
				stats.Iterations = res.Iterations
			}
			if res.ResidualNorm > stats.ResidualNorm {
				stats.ResidualNorm = res.ResidualNorm
			}
		}

		for i, v := range c.vertices {
			x[v] = xsub[i]
		}
	}

	logEvent(opts.Logger, "solve.done", "converged", stats.Converged, "iterations", stats.Iterations)
	return x, stats
}

func center(b []float64) {
	var mean float64
	for _, v := range b {
		mean += v
	}
	mean /= float64(len(b))
	for i := range b {
		b[i] -= mean
	}
}
