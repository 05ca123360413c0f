// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package alias implements Vose's alias method for O(1) sampling from a
// discrete distribution over positive weights, used by the vertex-sampler
// factorization to draw random neighbor pairs for its clique estimator.
package alias

import "golang.org/x/exp/rand"

// machine epsilon, matching the constant gonum's linsolve package defines
// for its own convergence-tolerance bookkeeping.
const eps = 1.0 / (1 << 53)

// Sampler draws in O(1) from a discrete distribution built from a
// positive weight vector.
type Sampler struct {
	k        int
	prob     []float64 // F: probability of keeping slot i
	alias    []int     // A: alias slot if i is not kept
	src      *rand.Rand
	residual float64
}

// New builds a Sampler over the k = len(p) entries of p, which must all be
// finite and positive. Construction is O(k). src supplies the randomness
// used by Draw and DrawMany; it must not be nil.
func New(p []float64, src *rand.Rand) *Sampler {
	k := len(p)
	if k == 0 {
		panic("alias: empty distribution")
	}
	if src == nil {
		panic("alias: nil RNG source")
	}
	var sum float64
	for _, w := range p {
		if w <= 0 {
			panic("alias: non-positive weight")
		}
		sum += w
	}

	scaled := make([]float64, k)
	for i, w := range p {
		scaled[i] = w * float64(k) / sum
	}

	small := make([]int, 0, k)
	large := make([]int, 0, k)
	for i, s := range scaled {
		if s < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	prob := make([]float64, k)
	al := make([]int, k)
	var residual float64
	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		prob[l] = scaled[l]
		al[l] = g
		scaled[g] = scaled[g] + scaled[l] - 1
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}
	// Leftover entries should have scaled value 1 up to floating-point
	// error; record the worst-case deviation as the residual.
	for _, g := range large {
		if d := scaled[g] - 1; d > residual || -d > residual {
			residual = abs(d)
		}
		prob[g] = 1
	}
	for _, l := range small {
		if d := scaled[l] - 1; d > residual || -d > residual {
			residual = abs(d)
		}
		prob[l] = 1
	}

	return &Sampler{k: k, prob: prob, alias: al, src: src, residual: residual}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Draw returns a single index in [0, k) distributed according to the
// weights the Sampler was built from.
func (s *Sampler) Draw() int {
	i := int(s.src.Float64() * float64(s.k))
	if i >= s.k {
		i = s.k - 1
	}
	if s.src.Float64() < s.prob[i] {
		return i
	}
	return s.alias[i]
}

// DrawMany returns n independent draws.
func (s *Sampler) DrawMany(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.Draw()
	}
	return out
}

// Residual reports the largest floating-point deviation from exact mass
// balance observed while building the tables, bounded in theory by k*eps.
func (s *Sampler) Residual() float64 { return s.residual }
