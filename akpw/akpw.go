// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package akpw builds low-stretch spanning trees for weighted undirected
// graphs using the Alon–Karp–Peleg–West clustering scheme: a graph is
// recursively clustered by boundary/volume-bounded reciprocal-weight
// Dijkstra growth, each cluster is contracted to a super-node, and the
// process recurses on the resulting quotient graph until a single vertex
// remains. The edges admitted during cluster growth, together with the
// recursively chosen quotient-graph edges, form the returned tree.
package akpw

import (
	"errors"
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"gonum.org/v1/laplacian/graph"
	"gonum.org/v1/laplacian/internal/set"
	"gonum.org/v1/laplacian/pq"
)

// ErrDisconnected is returned by Build when the input graph is not
// connected; AKPW assumes connectivity per call (the PCG driver is
// responsible for decomposing a disconnected graph into components
// before calling Build on each one).
var ErrDisconnected = errors.New("akpw: graph is not connected")

// Options configures the tree builder.
type Options struct {
	// Src supplies randomness for seed-order tie-breaking among edges of
	// equal weight. If nil, ties are broken by vertex index, which is
	// deterministic but not randomized.
	Src *rand.Rand
}

// DefaultOptions returns the zero-value Options (deterministic tie
// breaking, no RNG).
func DefaultOptions() Options { return Options{} }

// Build returns a spanning tree of g, represented as a symmetric sparse
// CSC graph whose nonzero weights match g's original edge weights. Build
// returns ErrDisconnected if g is not connected.
func Build(g *graph.CSC, opts Options) (*graph.CSC, error) {
	n := g.N()
	if !connected(g) {
		return nil, ErrDisconnected
	}
	if n == 1 {
		return graph.NewIJV(1).CompressSum(), nil
	}

	edges0 := edgesFromCSC(g)
	chosen := recurse(n, edges0, opts)

	tr := graph.NewIJV(n)
	for _, k := range chosen {
		e := edges0[k]
		tr.Add(e.i, e.j, e.w)
	}
	return tr.CompressSum(), nil
}

// leveledEdge is one edge of the graph at some level of the AKPW
// recursion. orig is the index into the top-level edge list (edges0) that
// this edge ultimately traces back to; it survives every contraction step
// unchanged, which is what lets recurse translate a deep quotient-graph
// edge straight back to an original edge without any extra bookkeeping.
type leveledEdge struct {
	i, j int
	w    float64
	orig int
}

func edgesFromCSC(g *graph.CSC) []leveledEdge {
	var edges []leveledEdge
	for v := 0; v < g.N(); v++ {
		rows, vals := g.Col(v)
		for k, u := range rows {
			if u > v {
				edges = append(edges, leveledEdge{i: v, j: u, w: vals[k], orig: len(edges)})
			}
		}
	}
	return edges
}

// recurse clusters the nv-vertex graph described by edges, contracts it,
// and recurses on the quotient graph, returning the orig indices of every
// edge admitted to the tree at this level or any deeper level.
func recurse(nv int, edges []leveledEdge, opts Options) []int {
	if nv <= 1 {
		return nil
	}

	clusterID, chosen := growClusters(nv, edges, opts)
	numClusters := countDistinct(clusterID)

	if numClusters == nv && nv > 1 {
		// Clustering made no progress (e.g. all weights tied below the
		// heavy-band threshold for every seed scanned). Force a single
		// contraction along the heaviest available edge so the recursion
		// is guaranteed to terminate; the graph is connected, so such an
		// edge exists.
		best := argmaxWeight(edges)
		a, b := clusterID[edges[best].i], clusterID[edges[best].j]
		mergeClusters(clusterID, a, b)
		chosen = append(chosen, edges[best].orig)
		numClusters--
	}

	renumber(clusterID, numClusters)
	quotient := contract(edges, clusterID)
	deeper := recurse(numClusters, quotient, opts)
	return append(chosen, deeper...)
}

// xFac is the heavy/volume threshold factor from spec §4.4: 1/(2 log n).
func xFac(n int) float64 {
	if n < 3 {
		n = 3
	}
	return 1 / (2 * math.Log(float64(n)))
}

func connected(g *graph.CSC) bool {
	n := g.N()
	if n == 0 {
		return true
	}
	seen := make([]bool, n)
	stack := []int{0}
	seen[0] = true
	count := 1
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		rows, _ := g.Col(v)
		for _, u := range rows {
			if !seen[u] {
				seen[u] = true
				count++
				stack = append(stack, u)
			}
		}
	}
	return count == n
}

func countDistinct(ids []int) int {
	seen := make(map[int]bool)
	for _, id := range ids {
		seen[id] = true
	}
	return len(seen)
}

func argmaxWeight(edges []leveledEdge) int {
	best := 0
	for k, e := range edges {
		if e.w > edges[best].w {
			best = k
		}
		_ = k
	}
	return best
}

func mergeClusters(clusterID []int, from, to int) {
	if from == to {
		return
	}
	for i, id := range clusterID {
		if id == from {
			clusterID[i] = to
		}
	}
}

// renumber compacts the (possibly sparse) cluster ids in clusterID into
// 0..numClusters-1, in place.
func renumber(clusterID []int, numClusters int) {
	remap := make(map[int]int, numClusters)
	next := 0
	for _, id := range clusterID {
		if _, ok := remap[id]; !ok {
			remap[id] = next
			next++
		}
	}
	for i, id := range clusterID {
		clusterID[i] = remap[id]
	}
}

// contract builds the quotient graph over compacted cluster ids, keeping,
// for every pair of clusters joined by at least one edge, the heaviest
// such edge (and its orig pointer), per spec §4.4 step 4.
func contract(edges []leveledEdge, clusterID []int) []leveledEdge {
	type key struct{ a, b int }
	best := make(map[key]leveledEdge)
	for _, e := range edges {
		a, b := clusterID[e.i], clusterID[e.j]
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		k := key{a, b}
		if cur, ok := best[k]; !ok || e.w > cur.w {
			best[k] = leveledEdge{i: a, j: b, w: e.w, orig: e.orig}
		}
	}
	out := make([]leveledEdge, 0, len(best))
	for _, e := range best {
		out = append(out, e)
	}
	return out
}

type adjRef struct {
	to   int
	w    float64
	orig int
}

func buildAdjacency(nv int, edges []leveledEdge) [][]adjRef {
	adj := make([][]adjRef, nv)
	for _, e := range edges {
		adj[e.i] = append(adj[e.i], adjRef{to: e.j, w: e.w, orig: e.orig})
		adj[e.j] = append(adj[e.j], adjRef{to: e.i, w: e.w, orig: e.orig})
	}
	return adj
}

// growClusters performs one level of AKPW's cluster growth: it scans
// edges in decreasing weight order within the heavy band to pick seeds,
// grows a cluster from each unassigned seed via reciprocal-weight
// Dijkstra, and assigns any vertex left unreached by growth its own
// singleton cluster. It returns the final cluster assignment and the orig
// indices of every edge admitted to the tree.
func growClusters(nv int, edges []leveledEdge, opts Options) (clusterID []int, chosen []int) {
	clusterID = make([]int, nv)
	for i := range clusterID {
		clusterID[i] = -1
	}
	if len(edges) == 0 {
		for v := range clusterID {
			clusterID[v] = v
		}
		return clusterID, nil
	}

	adj := buildAdjacency(nv, edges)
	wmax := edges[0].w
	for _, e := range edges {
		if e.w > wmax {
			wmax = e.w
		}
	}
	xf := xFac(nv)
	threshold := xf * wmax

	order := seedOrder(edges, opts.Src)
	nextID := 0
	for _, ei := range order {
		e := edges[ei]
		if e.w <= threshold {
			break
		}
		var seed int
		switch {
		case clusterID[e.i] == -1:
			seed = e.i
		case clusterID[e.j] == -1:
			seed = e.j
		default:
			continue
		}
		id := nextID
		nextID++
		chosen = append(chosen, growOneCluster(seed, id, adj, clusterID, xf)...)
	}
	for v := 0; v < nv; v++ {
		if clusterID[v] == -1 {
			clusterID[v] = nextID
			nextID++
		}
	}
	return clusterID, chosen
}

// seedOrder returns edge indices sorted by decreasing weight; when src is
// non-nil, ties are broken by an RNG-driven shuffle of equal-weight runs
// instead of by stable index order, matching the threaded-RNG convention
// used elsewhere in the solver (see DESIGN.md, §2.5 of SPEC_FULL.md).
func seedOrder(edges []leveledEdge, src *rand.Rand) []int {
	idx := make([]int, len(edges))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return edges[idx[a]].w > edges[idx[b]].w })
	if src == nil {
		return idx
	}
	start := 0
	for start < len(idx) {
		end := start + 1
		for end < len(idx) && edges[idx[end]].w == edges[idx[start]].w {
			end++
		}
		shuffle(idx[start:end], src)
		start = end
	}
	return idx
}

func shuffle(s []int, src *rand.Rand) {
	for i := len(s) - 1; i > 0; i-- {
		j := int(src.Int63n(int64(i + 1)))
		s[i], s[j] = s[j], s[i]
	}
}

func degreeAt(v int, adj [][]adjRef) float64 {
	var d float64
	for _, r := range adj[v] {
		d += r.w
	}
	return d
}

// growOneCluster grows a single cluster from seed using reciprocal-weight
// Dijkstra over adj, assigning every absorbed vertex cluster id id in
// clusterID. It returns the orig indices of the edges used to reach each
// non-seed vertex absorbed into the cluster.
func growOneCluster(seed, id int, adj [][]adjRef, clusterID []int, xf float64) []int {
	h := pq.NewHeap()
	h.Push(seed, 0)
	distKnown := map[int]float64{seed: 0}
	parentOrig := map[int]int{}
	inCluster := make(set.Ints)

	var boundary, volume float64
	var chosen []int
	for h.Len() > 0 {
		u, d := h.PopMin()
		if inCluster.Has(u) {
			continue
		}
		inCluster.Add(u)
		clusterID[u] = id
		if u != seed {
			chosen = append(chosen, parentOrig[u])
		}
		volume += degreeAt(u, adj)

		for _, r := range adj[u] {
			if inCluster.Has(r.to) {
				boundary -= r.w
				continue
			}
			if clusterID[r.to] != -1 {
				// Already locked into a different, earlier cluster.
				continue
			}
			boundary += r.w
			nd := d + 1/r.w
			if old, ok := distKnown[r.to]; !ok || nd < old {
				distKnown[r.to] = nd
				parentOrig[r.to] = r.orig
				if h.Contains(r.to) {
					h.DecreaseKey(r.to, nd)
				} else {
					h.Push(r.to, nd)
				}
			}
		}
		if boundary <= xf*volume {
			break
		}
	}
	return chosen
}
