// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pq

import "testing"

func TestBucketPopOrder(t *testing.T) {
	b := NewBucket(4)
	b.Build([]int{3, 1, 2, 1})
	var order []int
	for b.Len() > 0 {
		order = append(order, b.PopMin())
	}
	// Elements 1 and 3 share key 1; either relative order is acceptable,
	// but both must precede element 2 (key 2), which precedes element 0
	// (key 3).
	pos := make(map[int]int)
	for i, v := range order {
		pos[v] = i
	}
	if pos[1] > pos[2] || pos[3] > pos[2] {
		t.Fatalf("order = %v, want keys 1's before key 2's element", order)
	}
	if pos[2] > pos[0] {
		t.Fatalf("order = %v, want key-2 element before key-3 element", order)
	}
}

func TestBucketIncDec(t *testing.T) {
	b := NewBucket(3)
	b.Build([]int{1, 1, 1})
	b.Inc(0)
	b.Inc(0)
	// element 0 now has key 3, elements 1 and 2 remain at key 1.
	first := b.PopMin()
	if first == 0 {
		t.Fatalf("PopMin() = 0, want an element with the smaller key 1")
	}
	second := b.PopMin()
	if second == 0 {
		t.Fatalf("PopMin() = 0, want the other key-1 element next")
	}
	third := b.PopMin()
	if third != 0 {
		t.Fatalf("PopMin() = %d, want 0 last", third)
	}
}

func TestBucketDecMovesMinlistBack(t *testing.T) {
	b := NewBucket(2)
	b.Build([]int{5, 5})
	b.Dec(1)
	b.Dec(1)
	b.Dec(1)
	b.Dec(1)
	b.Dec(1) // element 1 now has key 0
	first := b.PopMin()
	if first != 1 {
		t.Fatalf("PopMin() = %d, want 1 (key decremented to 0)", first)
	}
}

func TestBucketPopEmptyPanics(t *testing.T) {
	b := NewBucket(1)
	b.Build([]int{1})
	b.PopMin()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic popping an empty queue")
		}
	}()
	b.PopMin()
}

func TestHeapPopOrderAndDecreaseKey(t *testing.T) {
	h := NewHeap()
	h.Push(0, 5)
	h.Push(1, 3)
	h.Push(2, 8)
	h.DecreaseKey(2, 1)

	v, d := h.PopMin()
	if v != 2 || d != 1 {
		t.Fatalf("PopMin() = (%d, %v), want (2, 1)", v, d)
	}
	v, _ = h.PopMin()
	if v != 1 {
		t.Fatalf("PopMin() = %d, want 1", v)
	}
	v, _ = h.PopMin()
	if v != 0 {
		t.Fatalf("PopMin() = %d, want 0", v)
	}
}
