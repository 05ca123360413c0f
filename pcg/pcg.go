// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pcg implements preconditioned conjugate gradients against a
// graph Laplacian, using an approximate LDLinv factorization (package
// elim) as the preconditioner. The iteration itself follows the same
// residual/search-direction recurrence as gonum's linsolve.CG; unlike
// linsolve, which exposes that recurrence through a reverse-communication
// Method/Context/Operation protocol so that callers can supply arbitrary
// matrix-free operators, this package has exactly one operator (the
// graph's own LMulVec) and exactly one preconditioner (elim.Solve), so
// the loop is written directly rather than through that indirection; see
// DESIGN.md.
package pcg

import (
	"time"

	"gonum.org/v1/gonum/floats"

	"gonum.org/v1/laplacian/elim"
	"gonum.org/v1/laplacian/graph"
)

// Options configures a Solve call.
type Options struct {
	// Tol is the target relative residual ‖Lx-b‖/‖b‖.
	Tol float64
	// MaxIters bounds the number of PCG iterations.
	MaxIters int
	// MaxTime bounds wall-clock time spent iterating; zero means no
	// limit.
	MaxTime time.Duration
}

// DefaultOptions returns Tol: 1e-6, MaxIters: 1000, no time limit.
func DefaultOptions() Options {
	return Options{Tol: 1e-6, MaxIters: 1000}
}

// Result is the outcome of a Solve call.
type Result struct {
	X            []float64
	Iterations   int
	Converged    bool
	ResidualNorm float64 // relative residual at return
}

// Solve runs preconditioned conjugate gradients on g's Laplacian against
// right-hand side b, which must already satisfy mean(b) == 0, using ldl
// as the preconditioner. It returns the best iterate found within
// opts.MaxIters iterations or opts.MaxTime wall-clock, whichever comes
// first; Result.Converged reports whether the relative residual target
// was met. g must be connected — package laplacian handles the
// disconnected case by decomposing into components (see Components) first.
func Solve(g *graph.CSC, ldl *elim.LDLinv, b []float64, opts Options) Result {
	n := g.N()
	x := make([]float64, n)

	bNorm := floats.Norm(b, 2)
	if bNorm == 0 {
		return Result{X: x, Converged: true}
	}

	r := append([]float64(nil), b...)
	z := elim.Solve(ldl, r)
	p := append([]float64(nil), z...)
	rho := floats.Dot(r, z)

	var deadline time.Time
	hasDeadline := opts.MaxTime > 0
	if hasDeadline {
		deadline = time.Now().Add(opts.MaxTime)
	}

	ap := make([]float64, n)
	best := make([]float64, n)
	bestResid := 1.0
	for iter := 1; iter <= opts.MaxIters; iter++ {
		g.LMulVec(ap, p)
		alpha := rho / floats.Dot(p, ap)
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, ap)

		relResid := floats.Norm(r, 2) / bNorm
		if relResid <= opts.Tol {
			return Result{X: x, Iterations: iter, Converged: true, ResidualNorm: relResid}
		}
		if relResid < bestResid {
			bestResid = relResid
			copy(best, x)
		}
		if hasDeadline && time.Now().After(deadline) {
			return Result{X: best, Iterations: iter, Converged: false, ResidualNorm: bestResid}
		}

		z = elim.Solve(ldl, r)
		rhoNew := floats.Dot(r, z)
		beta := rhoNew / rho
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rho = rhoNew
	}

	return Result{X: best, Iterations: opts.MaxIters, Converged: false, ResidualNorm: bestResid}
}
