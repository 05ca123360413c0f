// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pq provides the priority queues used to drive the solver's two
// "lightest unassigned element" loops: elimination ordering (integer
// vertex degree, amortized O(1) via bucketing) and AKPW's Dijkstra-style
// cluster growth (real-valued reciprocal-weight distance, via a standard
// binary heap). The two share a role — always hand back whichever element
// currently has the smallest key — but differ enough in key type and
// update pattern (integer +/-1 vs. arbitrary float64 decrease-key) that
// they are implemented as two small, independent types rather than forced
// behind one generic interface.
package pq

// DegreePQ is implemented by integer-keyed queues supporting pop-min and
// unit increment/decrement of a tracked element's key in amortized O(1),
// for keys bounded by a small multiple of the number of elements. Bucket
// is the production implementation.
type DegreePQ interface {
	// Build initializes the queue with one element per entry of
	// initialKeys, indexed by position.
	Build(initialKeys []int)

	// PopMin removes and returns the index of the element with the
	// smallest current key. PopMin panics if the queue is empty.
	PopMin() int

	// Inc increments element i's key by one, relocating it if its bucket
	// changes.
	Inc(i int)

	// Dec decrements element i's key by one, relocating it if its bucket
	// changes.
	Dec(i int)

	// Len returns the number of elements still in the queue.
	Len() int
}

const none = -1

type node struct {
	prev, next int
	key        int
}

// Bucket is a DegreePQ implementation using one doubly-linked list per
// distinct key up to n, and buckets of width n beyond that, so that the
// number of distinct buckets is bounded by 2n+1 regardless of how large
// keys grow (elimination fill-in can roughly double a vertex's degree
// repeatedly, but never needs more than O(n) buckets under this mapping).
type Bucket struct {
	n       int
	nodes   []node
	lists   []int // bucket index -> head element index, or none
	bucket  []int // element index -> its current bucket index
	minlist int
	count   int
}

// NewBucket returns an empty Bucket sized for n elements. Call Build
// before using it.
func NewBucket(n int) *Bucket {
	if n <= 0 {
		panic("pq: non-positive size")
	}
	return &Bucket{n: n}
}

// keyMap maps a key to its bucket index: keys up to n get their own
// bucket, larger keys are grouped n + floor(key/n) per element, bounding
// the total bucket count to 2n+1.
func (b *Bucket) keyMap(key int) int {
	if key <= b.n {
		if key < 0 {
			key = 0
		}
		return key
	}
	return b.n + key/b.n
}

// Build initializes the queue with one element per entry of initialKeys,
// immediately placing every element into its bucket.
func (b *Bucket) Build(initialKeys []int) {
	b.BuildInactive(initialKeys)
	for i := range initialKeys {
		b.Activate(i)
	}
}

// BuildInactive allocates storage for one element per entry of
// initialKeys, recording each element's starting key, but places none of
// them into the queue. Callers that need elements to join the queue only
// once some external condition holds (e.g. elimination ordering, which
// enqueues a tree vertex only once it becomes a leaf) call Activate for
// each element once it is ready.
func (b *Bucket) BuildInactive(initialKeys []int) {
	n := len(initialKeys)
	if n != b.n {
		panic("pq: initialKeys length does not match Bucket size")
	}
	b.nodes = make([]node, n)
	b.bucket = make([]int, n)
	b.lists = make([]int, 2*n+2)
	for i := range b.lists {
		b.lists[i] = none
	}
	for i, k := range initialKeys {
		b.nodes[i] = node{prev: none, next: none, key: k}
		b.bucket[i] = none
	}
	b.minlist = 0
	b.count = 0
}

// Activate inserts element i, which must have been allocated by
// BuildInactive or Build and must not currently be in the queue, into the
// bucket for its current key.
func (b *Bucket) Activate(i int) {
	bk := b.keyMap(b.nodes[i].key)
	b.pushFront(i, bk)
	b.count++
	if bk < b.minlist {
		b.minlist = bk
	}
}

func (b *Bucket) pushFront(i, bk int) {
	head := b.lists[bk]
	b.nodes[i].prev = none
	b.nodes[i].next = head
	if head != none {
		b.nodes[head].prev = i
	}
	b.lists[bk] = i
	b.bucket[i] = bk
}

func (b *Bucket) remove(i int) {
	bk := b.bucket[i]
	p, nx := b.nodes[i].prev, b.nodes[i].next
	if p != none {
		b.nodes[p].next = nx
	} else {
		b.lists[bk] = nx
	}
	if nx != none {
		b.nodes[nx].prev = p
	}
}

// PopMin removes and returns the element index with the smallest key.
func (b *Bucket) PopMin() int {
	if b.count == 0 {
		panic("pq: pop from empty queue")
	}
	for b.lists[b.minlist] == none {
		b.minlist++
	}
	i := b.lists[b.minlist]
	b.remove(i)
	b.bucket[i] = none
	b.count--
	return i
}

// Inc increments element i's key by one. An element that is not in the
// queue (not yet activated, or already popped) only has its key updated.
func (b *Bucket) Inc(i int) {
	b.nodes[i].key++
	if b.bucket[i] == none {
		return
	}
	newBk := b.keyMap(b.nodes[i].key)
	if newBk == b.bucket[i] {
		return
	}
	b.remove(i)
	b.pushFront(i, newBk)
}

// Dec decrements element i's key by one. An element that is not in the
// queue only has its key updated.
func (b *Bucket) Dec(i int) {
	b.nodes[i].key--
	if b.bucket[i] == none {
		return
	}
	newBk := b.keyMap(b.nodes[i].key)
	if newBk != b.bucket[i] {
		b.remove(i)
		b.pushFront(i, newBk)
	}
	if newBk < b.minlist {
		b.minlist = newBk
	}
}

// Len returns the number of elements remaining in the queue.
func (b *Bucket) Len() int { return b.count }

// Key returns the current key of element i, for diagnostics and testing.
func (b *Bucket) Key(i int) int { return b.nodes[i].key }
