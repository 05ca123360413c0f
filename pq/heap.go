// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pq

import "container/heap"

// heapItem is one entry of a Heap, tracking its own position so that
// DecreaseKey can call heap.Fix in O(log n) instead of a linear search, the
// same index-tracking idiom gonum's graph/path Dijkstra implementation
// uses over container/heap.
type heapItem struct {
	vertex int
	dist   float64
	index  int
}

type heapSlice []*heapItem

func (h heapSlice) Len() int            { return len(h) }
func (h heapSlice) Less(i, j int) bool  { return h[i].dist < h[j].dist }
func (h heapSlice) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}
func (h *heapSlice) Push(x interface{}) {
	item := x.(*heapItem)
	item.index = len(*h)
	*h = append(*h, item)
}
func (h *heapSlice) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// Heap is a real-valued priority queue keyed by distance, used by AKPW's
// reciprocal-weight Dijkstra cluster growth where keys are not bounded
// integers and Bucket's bucketing scheme does not apply.
type Heap struct {
	items []*heapItem
	index map[int]*heapItem
	h     heapSlice
}

// NewHeap returns an empty Heap.
func NewHeap() *Heap {
	return &Heap{index: make(map[int]*heapItem)}
}

// Push inserts vertex with the given distance key.
func (q *Heap) Push(vertex int, dist float64) {
	item := &heapItem{vertex: vertex, dist: dist}
	q.index[vertex] = item
	heap.Push(&q.h, item)
}

// Len returns the number of elements in the queue.
func (q *Heap) Len() int { return q.h.Len() }

// PopMin removes and returns the vertex with the smallest distance and its
// key.
func (q *Heap) PopMin() (vertex int, dist float64) {
	item := heap.Pop(&q.h).(*heapItem)
	delete(q.index, item.vertex)
	return item.vertex, item.dist
}

// Contains reports whether vertex is currently in the queue.
func (q *Heap) Contains(vertex int) bool {
	_, ok := q.index[vertex]
	return ok
}

// DecreaseKey lowers vertex's distance to dist if dist is smaller than its
// current key, re-heapifying in O(log n). It panics if vertex is not in
// the queue.
func (q *Heap) DecreaseKey(vertex int, dist float64) {
	item, ok := q.index[vertex]
	if !ok {
		panic("pq: DecreaseKey on vertex not in queue")
	}
	if dist < item.dist {
		item.dist = dist
		heap.Fix(&q.h, item.index)
	}
}
