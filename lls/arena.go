// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lls implements the pooled linked-list arena used to hold
// per-vertex adjacency during approximate Gaussian elimination. A single
// fixed-capacity block of cells backs every per-vertex list; cells are
// addressed by stable arena index rather than pointer so that the edge
// sampler (package elim) can keep a cross-reference ("reverse") index
// between a cell and its mirror on the other endpoint's list without
// tracking live pointers into a data structure that is relocated as lists
// grow and shrink.
//
// An Arena is built once per solver build, owned exclusively by that
// build, and discarded at the end of it; it is not intended to be reused
// across builds (see DESIGN.md for the reasoning).
package lls

// cell is one entry of the arena: an edge (weight, multi-edge count,
// neighbor), the next cell in its owning vertex's list, and the arena
// index of its mirror cell on the neighbor's list (or -1 if unlinked).
// A cell with weight 0 is considered dead: it still occupies a slot and
// is still returned to the free pool on Purge, but contributes nothing.
type cell struct {
	weight   float64
	count    float64
	neighbor int
	next     int
	reverse  int
}

const none = -1

// Arena is a fixed-capacity pool of linked-list cells backing n vertices'
// adjacency lists.
type Arena struct {
	cells []cell
	first []int
	last  []int

	ring []int
	head int
	tail int
	free int

	inUse int
	peak  int
}

// NewArena returns an arena with empty per-vertex lists for n vertices and
// room for capacity cells. If capacity is guessed too low, Add will panic
// once the pool is exhausted; a starting estimate proportional to the
// number of graph edges is sufficient per the package's sizing guidance.
func NewArena(n, capacity int) *Arena {
	if n <= 0 {
		panic("lls: non-positive vertex count")
	}
	if capacity <= 0 {
		panic("lls: non-positive capacity")
	}
	first := make([]int, n)
	last := make([]int, n)
	for v := range first {
		first[v] = none
		last[v] = none
	}
	ring := make([]int, capacity)
	for i := range ring {
		ring[i] = i
	}
	return &Arena{
		cells: make([]cell, capacity),
		first: first,
		last:  last,
		ring:  ring,
		free:  capacity,
	}
}

// Cap returns the arena's total cell capacity.
func (a *Arena) Cap() int { return len(a.cells) }

// Peak returns the largest number of simultaneously allocated cells
// observed so far. Useful for tuning the capacity passed to NewArena in a
// subsequent build.
func (a *Arena) Peak() int { return a.peak }

func (a *Arena) alloc() int {
	if a.free == 0 {
		panic("lls: pool exhausted (overwriting)")
	}
	idx := a.ring[a.head]
	a.head = (a.head + 1) % len(a.ring)
	a.free--
	a.inUse++
	if a.inUse > a.peak {
		a.peak = a.inUse
	}
	return idx
}

func (a *Arena) release(idx int) {
	a.ring[a.tail] = idx
	a.tail = (a.tail + 1) % len(a.ring)
	a.free++
	a.inUse--
}

// Add appends (weight, count, neighbor) to the tail of v's list and
// returns the new cell's arena index. Add panics if neighbor == v (a
// self-loop) or if the pool is exhausted.
func (a *Arena) Add(v int, weight, count float64, neighbor int) int {
	if neighbor == v {
		panic("lls: self-loop neighbor")
	}
	idx := a.alloc()
	a.cells[idx] = cell{weight: weight, count: count, neighbor: neighbor, next: none, reverse: none}
	if a.first[v] == none {
		a.first[v] = idx
	} else {
		a.cells[a.last[v]].next = idx
	}
	a.last[v] = idx
	return idx
}

// Link records that cells i and j (previously returned by Add, on two
// different vertices' lists) are mirrors of one endpoint's view of the
// same edge. Used by the edge sampler to update both sides of an edge
// when one side is split.
func (a *Arena) Link(i, j int) {
	a.cells[i].reverse = j
	a.cells[j].reverse = i
}

// Reverse returns the arena index linked to cell i via Link, or none if
// unset.
func (a *Arena) Reverse(i int) int { return a.cells[i].reverse }

// Weight, Count, and Neighbor return the fields of cell i.
func (a *Arena) Weight(i int) float64  { return a.cells[i].weight }
func (a *Arena) Count(i int) float64   { return a.cells[i].count }
func (a *Arena) Neighbor(i int) int    { return a.cells[i].neighbor }

// SetWeight overwrites cell i's weight in place, e.g. to zero out leftover
// mass after an edge split consumes part of it.
func (a *Arena) SetWeight(i int, w float64) { a.cells[i].weight = w }

// Kill marks cell i dead: its weight becomes 0 so it is skipped by column
// scans and Purge, but it remains allocated (and in its list) until the
// owning vertex's list is next purged.
func (a *Arena) Kill(i int) { a.cells[i].weight = 0 }

// IsDead reports whether cell i has been killed.
func (a *Arena) IsDead(i int) bool { return a.cells[i].weight == 0 }

// First returns the arena index of the first cell in v's list, or none.
func (a *Arena) First(v int) int { return a.first[v] }

// Next returns the arena index following cell i in its list, or none.
func (a *Arena) Next(i int) int { return a.cells[i].next }

// Scratch holds dense per-vertex accumulation buffers reused across Purge
// calls, avoiding an allocation per elimination step. Callers must not
// reuse a Scratch across Arenas of different sizes.
type Scratch struct {
	val     []float64
	mult    []float64
	touched []int
}

// NewScratch returns a Scratch sized for a graph on n vertices.
func NewScratch(n int) *Scratch {
	return &Scratch{val: make([]float64, n), mult: make([]float64, n)}
}

// Purge drains v's list, coalescing multi-edges to distinct neighbors. It
// returns the total weight drained (diag), the sum of multi-edge counts
// across distinct neighbors (multSum), and parallel slices of distinct
// neighbor indices, summed weights, and summed counts. All cells in v's
// list, dead or alive, are returned to the free pool and v's list becomes
// empty.
//
// When capEdge is true, the multiplicity accumulated for a cell is capped
// at rho * weight * ‖xhat[v] - xhat[neighbor]‖² before being added to the
// running sum, using the effective-resistance sketch embedding xhat
// (package sketch) to bound how many parallel copies of a fill edge are
// trusted. xhat may be nil when capEdge is false.
//
// Purge panics if a live cell's neighbor equals v (an internal invariant
// violation, not a user error).
func (a *Arena) Purge(v int, s *Scratch, capEdge bool, rho float64, xhat [][]float64) (diag, multSum float64, nbrs []int, weights []float64, mults []float64) {
	idx := a.first[v]
	for idx != none {
		next := a.cells[idx].next
		if !a.IsDead(idx) {
			nb := a.cells[idx].neighbor
			if nb == v {
				panic("lls: purge found self-loop cell")
			}
			w := a.cells[idx].weight
			c := a.cells[idx].count
			diag += w
			if s.val[nb] == 0 && s.mult[nb] == 0 {
				s.touched = append(s.touched, nb)
			}
			// v itself is leaving the system: the mirror cell on nb's list
			// would otherwise keep pointing at an eliminated vertex.
			if rev := a.cells[idx].reverse; rev != none {
				a.Kill(rev)
			}
			if capEdge {
				cap := rho * w * sqDist(xhat[v], xhat[nb])
				if c > cap {
					c = cap
				}
			}
			s.val[nb] += w
			s.mult[nb] += c
		}
		a.release(idx)
		idx = next
	}
	a.first[v] = none
	a.last[v] = none

	insertionSortInts(s.touched)
	nbrs = make([]int, len(s.touched))
	weights = make([]float64, len(s.touched))
	mults = make([]float64, len(s.touched))
	for k, nb := range s.touched {
		nbrs[k] = nb
		weights[k] = s.val[nb]
		mults[k] = s.mult[nb]
		multSum += s.mult[nb]
		s.val[nb] = 0
		s.mult[nb] = 0
	}
	s.touched = s.touched[:0]
	return diag, multSum, nbrs, weights, mults
}

func sqDist(a, b []float64) float64 {
	var d float64
	for i := range a {
		diff := a[i] - b[i]
		d += diff * diff
	}
	return d
}

// insertionSortInts sorts small slices without pulling in sort.Ints's
// interface overhead; purged columns are typically tiny.
func insertionSortInts(s []int) {
	for i := 1; i < len(s); i++ {
		v := s[i]
		j := i - 1
		for j >= 0 && s[j] > v {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = v
	}
}
