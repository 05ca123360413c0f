// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package laplacian

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/laplacian/akpw"
	"gonum.org/v1/laplacian/graph"
)

// Tree returns a low-stretch spanning tree of g, represented as a
// symmetric sparse graph whose nonzero weights match g's original edge
// weights, for callers who want stretch analysis without building a full
// Solver. g must be connected; akpw.ErrDisconnected is returned
// otherwise. If src is nil, a freshly seeded source is used.
func Tree(g *graph.CSC, src *rand.Rand) (*graph.CSC, error) {
	if src == nil {
		src = rand.New(rand.NewSource(1))
	}
	return akpw.Build(g, akpw.Options{Src: src})
}
