// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package order builds elimination orderings from a low-stretch spanning
// tree (package akpw), for consumption by the approximate factorization
// in package elim.
package order

import (
	"gonum.org/v1/laplacian/graph"
	"gonum.org/v1/laplacian/pq"
)

// Tree is the parent-array representation of a rooted spanning tree used
// during elimination ordering: Parent[v] is v's parent, with the root
// satisfying Parent[root] == root, and NumChildren[v] counts v's
// remaining unprocessed children during the leaf-peeling orderings below.
type Tree struct {
	Root        int
	Parent      []int
	NumChildren []int
}

// NewTree roots edges (a spanning tree as returned by akpw.Build) at root
// and returns its parent-array form.
func NewTree(edges *graph.CSC, root int) *Tree {
	n := edges.N()
	parent := make([]int, n)
	numChildren := make([]int, n)
	visited := make([]bool, n)
	visited[root] = true
	parent[root] = root
	queue := []int{root}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		rows, _ := edges.Col(v)
		for _, u := range rows {
			if !visited[u] {
				visited[u] = true
				parent[u] = v
				numChildren[v]++
				queue = append(queue, u)
			}
		}
	}
	return &Tree{Root: root, Parent: parent, NumChildren: numChildren}
}

// Policy selects an elimination ordering strategy.
type Policy int

const (
	// MinDegree eliminates tree leaves in order of increasing degree in
	// the original graph g, re-enqueuing a vertex's parent once it
	// becomes a leaf.
	MinDegree Policy = iota
	// ApproxDegree behaves like MinDegree but additionally increments
	// the tracked degree of every neighbor of a popped vertex by 2 to
	// model fill-in, producing an order tailored to the approximate
	// elimination sampler.
	ApproxDegree
	// DFS orders vertices by a reverse depth-first traversal from the
	// root, independent of degree.
	DFS
)

// Build returns an elimination order: a permutation of [0, n) such that
// Order[k] is the k-th vertex eliminated. g supplies the original-graph
// degrees that MinDegree and ApproxDegree key on.
func Build(tree *Tree, g *graph.CSC, policy Policy) []int {
	switch policy {
	case DFS:
		return dfsOrder(tree)
	case ApproxDegree:
		return leafPeel(tree, g, true)
	default:
		return leafPeel(tree, g, false)
	}
}

// leafPeel implements both MinDegree and ApproxDegree: a bucketed
// priority queue keyed on current degree, initially holding only the
// tree's leaves, repeatedly popping the smallest-degree leaf, appending
// it to the order, and activating its parent once it loses its last
// child. When approx is true, popping a vertex also increments the
// tracked degree of each of its neighbors in g by 2, modeling the fill-in
// the approximate sampler would otherwise introduce.
func leafPeel(tree *Tree, g *graph.CSC, approx bool) []int {
	n := len(tree.Parent)
	keys := make([]int, n)
	for v := 0; v < n; v++ {
		keys[v] = g.UnweightedDegree(v)
	}

	numChildren := append([]int(nil), tree.NumChildren...)
	queue := pq.NewBucket(n)
	queue.BuildInactive(keys)
	for v := 0; v < n; v++ {
		if numChildren[v] == 0 {
			queue.Activate(v)
		}
	}

	order := make([]int, 0, n)
	for queue.Len() > 0 {
		v := queue.PopMin()
		order = append(order, v)

		if approx {
			rows, _ := g.Col(v)
			for _, u := range rows {
				queue.Inc(u)
				queue.Inc(u)
			}
		}

		p := tree.Parent[v]
		if p != v {
			numChildren[p]--
			if numChildren[p] == 0 {
				queue.Activate(p)
			}
		}
	}
	return order
}

func dfsOrder(tree *Tree) []int {
	n := len(tree.Parent)
	children := make([][]int, n)
	for v := 0; v < n; v++ {
		if v != tree.Root {
			p := tree.Parent[v]
			children[p] = append(children[p], v)
		}
	}
	var order []int
	var visit func(v int)
	visit = func(v int) {
		for _, c := range children[v] {
			visit(c)
		}
		order = append(order, v)
	}
	visit(tree.Root)
	// Reverse DFS from root per spec: post-order from the root already
	// visits leaves before their ancestors, which is the reverse of a
	// root-first preorder; no further reversal is required.
	return order
}
