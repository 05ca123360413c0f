// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elim

import (
	"sort"

	"golang.org/x/exp/rand"

	"gonum.org/v1/laplacian/graph"
	"gonum.org/v1/laplacian/lls"
	"gonum.org/v1/laplacian/pq"
)

// EdgeEliminate runs the edgeElim heuristic (spec §4.7): it always
// eliminates the current minimum-degree vertex (tracked by a Bucket keyed
// on live neighbor count), and processes that vertex's column as a chain
// of 2-edge splits instead of the vertex sampler's clique estimator.
// capacity sizes the pooled linked-list arena; src drives the random
// split-partner draw.
func EdgeEliminate(g *graph.CSC, capacity int, src *rand.Rand) *LDLinv {
	n := g.N()
	a := lls.NewArena(n, capacity)
	degree := make([]int, n)
	for v := 0; v < n; v++ {
		rows, vals := g.Col(v)
		degree[v] = len(rows)
		for k, u := range rows {
			if u > v {
				iu := a.Add(v, vals[k], 1, u)
				iv := a.Add(u, vals[k], 1, v)
				a.Link(iu, iv)
			}
		}
	}

	queue := pq.NewBucket(n)
	queue.Build(degree)

	b := newBuilder(n)
	scratch := lls.NewScratch(n)
	eliminated := make([]bool, n)

	for queue.Len() > 0 {
		v := queue.PopMin()
		eliminated[v] = true

		live := collectLive(a, v, queue)
		rows, fs, diag := splitColumn(a, live, src)
		b.addColumn(v, rows, fs, diag)
		// Every cell of v's list was killed in place by splitColumn (or
		// already dead from collectLive's duplicate coalescing); purge
		// now reclaims them into the free pool rather than leaving them
		// allocated for the rest of the build.
		a.Purge(v, scratch, false, 0, nil)

		// Every neighbor touched by a split gains a new incident edge
		// (raising its degree by one); model that in the priority queue
		// the same way approxElimOrder models elimination fill-in.
		for _, r := range rows {
			if !eliminated[r] {
				queue.Inc(r)
			}
		}
	}

	return b.build()
}

type liveCell struct {
	idx    int
	nbr    int
	weight float64
}

// collectLive walks v's arena list, skipping dead cells and coalescing
// duplicate neighbors (multi-edges) by summing their weight into the
// first-seen cell and killing the rest, then returns the surviving cells
// sorted by neighbor id. Per spec §4.7, coalescing a duplicate decrements
// the touched neighbor's tracked degree in queue, the mirror image of the
// Inc applied when that duplicate edge was first created.
func collectLive(a *lls.Arena, v int, queue *pq.Bucket) []liveCell {
	byNbr := make(map[int]int) // neighbor -> position in out
	var out []liveCell
	for idx := a.First(v); idx != -1; idx = a.Next(idx) {
		if a.IsDead(idx) {
			continue
		}
		nb := a.Neighbor(idx)
		if pos, ok := byNbr[nb]; ok {
			out[pos].weight += a.Weight(idx)
			killWithMirror(a, idx)
			queue.Dec(nb)
			continue
		}
		byNbr[nb] = len(out)
		out = append(out, liveCell{idx: idx, nbr: nb, weight: a.Weight(idx)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].nbr < out[j].nbr })
	return out
}

// splitColumn performs the 2-edge split sweep over the coalesced column
// live, returning the (row, f) chain for the LDLinv column and the
// diagonal weight recorded for the eliminated vertex.
func splitColumn(a *lls.Arena, live []liveCell, src *rand.Rand) (rows []int, fs []float64, diag float64) {
	n := len(live)
	if n == 0 {
		return nil, nil, 0
	}
	if n == 1 {
		killWithMirror(a, live[0].idx)
		return []int{live[0].nbr}, []float64{1}, live[0].weight
	}

	csum := make([]float64, n)
	var running float64
	for i, c := range live {
		running += c.weight
		csum[i] = running
	}

	colScale := 1.0
	wdeg := csum[n-1]
	rows = make([]int, 0, n)
	fs = make([]float64, 0, n)

	for k := 0; k < n-1; k++ {
		c := live[k]
		w := c.weight * colScale
		f := w / wdeg

		r := csum[k] + src.Float64()*(csum[n-1]-csum[k])
		kp := lowerBound(csum, r)
		if kp <= k {
			kp = k + 1
		}
		if kp >= n {
			kp = n - 1
		}
		partner := live[kp]

		newWeight := f * (1 - f) * wdeg
		addSplitEdge(a, c.nbr, partner.nbr, newWeight)

		colScale *= 1 - f
		wdeg *= (1 - f) * (1 - f)
		killWithMirror(a, c.idx)

		rows = append(rows, c.nbr)
		fs = append(fs, f)
	}

	last := live[n-1]
	killWithMirror(a, last.idx)
	rows = append(rows, last.nbr)
	fs = append(fs, 1)
	diag = last.weight * colScale
	return rows, fs, diag
}

// killWithMirror kills cell idx and, if it is linked, its mirror cell on
// the other endpoint's list. The vertex owning idx is being eliminated, so
// the mirror would otherwise be left pointing at a vertex no longer in the
// system (see lls.Arena.Purge, which applies the same rule to cells it
// consumes directly).
func killWithMirror(a *lls.Arena, idx int) {
	a.Kill(idx)
	if rev := a.Reverse(idx); rev != -1 {
		a.Kill(rev)
	}
}

// lowerBound returns the smallest index i such that csum[i] >= target,
// or len(csum)-1 if no such index exists (target may exceed the last
// entry by a negligible floating-point margin).
func lowerBound(csum []float64, target float64) int {
	lo, hi := 0, len(csum)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if csum[mid] < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// addSplitEdge materializes a fresh reverse-linked edge between u and v
// with the given weight, appended to both endpoints' arena lists. Rather
// than mutating an existing reverse-linked cell pair in place (the
// storage-reuse trick the original heuristic uses to avoid an allocation
// per split), a new pair of cells is always allocated.
func addSplitEdge(a *lls.Arena, u, v int, weight float64) {
	if weight <= 0 {
		return
	}
	iu := a.Add(u, weight, 1, v)
	iv := a.Add(v, weight, 1, u)
	a.Link(iu, iv)
}
