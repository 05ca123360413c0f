// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pcg

import "gonum.org/v1/laplacian/graph"

// Components partitions g's vertices into connected components, returning
// one []int of original vertex indices per component, in increasing
// order of each component's smallest member. laplacian.Build uses this to
// decompose a possibly-disconnected graph so that each piece is factored
// and solved independently, per spec §4.9 and §7 item 5.
func Components(g *graph.CSC) [][]int {
	n := g.N()
	visited := make([]bool, n)
	var comps [][]int
	for s := 0; s < n; s++ {
		if visited[s] {
			continue
		}
		var comp []int
		stack := []int{s}
		visited[s] = true
		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			comp = append(comp, v)
			rows, _ := g.Col(v)
			for _, u := range rows {
				if !visited[u] {
					visited[u] = true
					stack = append(stack, u)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Subgraph returns the induced subgraph of g on vertices (which must be
// distinct, in any order), renumbered to [0, len(vertices)) so that
// vertices[i] becomes vertex i.
func Subgraph(g *graph.CSC, vertices []int) *graph.CSC {
	old2new := make(map[int]int, len(vertices))
	for i, v := range vertices {
		old2new[v] = i
	}
	t := graph.NewIJV(len(vertices))
	for i, v := range vertices {
		rows, vals := g.Col(v)
		for k, u := range rows {
			if j, ok := old2new[u]; ok && u > v {
				t.Add(i, j, vals[k])
			}
		}
	}
	return t.CompressSum()
}
