// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sketch provides a cheap Johnson–Lindenstrauss-style embedding
// approximating graph effective resistance, used optionally by package
// lls (via Arena.Purge's capEdge parameter) to bound how many parallel
// copies of a fill edge approximate elimination trusts.
//
// Spec §4.11 describes the full sketch as a random projection of
// W^{1/2} B L^+ (B the incidence matrix, L^+ the Laplacian
// pseudoinverse), which would require its own approximate solve to
// apply — but that solve is exactly the thing elimination is in the
// middle of building, so computing it here would be circular. Instead
// Embed sketches the resistance metric of a low-stretch spanning tree
// (the same metric akpw.AverageStretch reports on), which is already
// available before elimination starts and is a close proxy for graph
// effective resistance on the low-stretch trees this solver builds.
package sketch

import (
	"math"

	"golang.org/x/exp/rand"

	"gonum.org/v1/laplacian/graph"
)

// Embed returns a k-dimensional embedding xhat of tree's n vertices such
// that, in expectation over the random signs drawn from src,
// ‖xhat[u] - xhat[v]‖² is k times the tree-resistance distance between u
// and v (the sum of 1/weight over tree's u-v path). tree must be a
// connected spanning tree as produced by akpw.Build.
func Embed(tree *graph.CSC, k int, src *rand.Rand) [][]float64 {
	n := tree.N()
	xhat := make([][]float64, n)
	for v := range xhat {
		xhat[v] = make([]float64, k)
	}
	if n <= 1 {
		return xhat
	}

	visited := make([]bool, n)
	root := 0
	visited[root] = true
	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		rows, vals := tree.Col(v)
		for i, u := range rows {
			if visited[u] {
				continue
			}
			visited[u] = true
			step := math.Sqrt(1 / vals[i])
			for r := 0; r < k; r++ {
				sign := 1.0
				if src.Float64() < 0.5 {
					sign = -1
				}
				xhat[u][r] = xhat[v][r] + sign*step
			}
			queue = append(queue, u)
		}
	}
	return xhat
}
