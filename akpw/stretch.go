// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package akpw

import "gonum.org/v1/laplacian/graph"

// AverageStretch returns the average, over all non-tree edges of g, of the
// stretch of that edge with respect to tree: w(e) times the length of
// tree's path between e's endpoints measured in the resistance metric
// (the sum of 1/weight over the path's edges). tree must be a spanning
// tree of g as returned by Build.
func AverageStretch(tree, g *graph.CSC) float64 {
	n := tree.N()
	parent := make([]int, n)
	depth := make([]int, n)
	distToRoot := make([]float64, n)
	visited := make([]bool, n)

	root := 0
	visited[root] = true
	parent[root] = -1
	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		rows, vals := tree.Col(v)
		for k, u := range rows {
			if !visited[u] {
				visited[u] = true
				parent[u] = v
				depth[u] = depth[v] + 1
				distToRoot[u] = distToRoot[v] + 1/vals[k]
				queue = append(queue, u)
			}
		}
	}

	var totalStretch float64
	var count int
	for v := 0; v < n; v++ {
		rows, vals := g.Col(v)
		for k, u := range rows {
			if u <= v {
				continue
			}
			if isTreeEdge(tree, v, u) {
				continue
			}
			res := treePathResistance(v, u, parent, depth, distToRoot)
			totalStretch += vals[k] * res
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return totalStretch / float64(count)
}

func isTreeEdge(tree *graph.CSC, v, u int) bool {
	rows, _ := tree.Col(v)
	for _, r := range rows {
		if r == u {
			return true
		}
	}
	return false
}

func treePathResistance(v, u int, parent, depth []int, distToRoot []float64) float64 {
	a, b := v, u
	for depth[a] > depth[b] {
		a = parent[a]
	}
	for depth[b] > depth[a] {
		b = parent[b]
	}
	for a != b {
		a = parent[a]
		b = parent[b]
	}
	lca := a
	return distToRoot[v] + distToRoot[u] - 2*distToRoot[lca]
}
