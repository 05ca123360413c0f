// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lls

import "testing"

func TestAddPurgeRoundTrip(t *testing.T) {
	a := NewArena(4, 16)
	a.Add(0, 1, 1, 1)
	a.Add(0, 2, 1, 2)
	a.Add(0, 1, 1, 1) // duplicate edge to 1

	s := NewScratch(4)
	diag, multSum, nbrs, weights, mults := a.Purge(0, s, false, 0, nil)

	if diag != 4 {
		t.Errorf("diag = %v, want 4", diag)
	}
	if multSum != 3 {
		t.Errorf("multSum = %v, want 3", multSum)
	}
	if len(nbrs) != 2 || nbrs[0] != 1 || nbrs[1] != 2 {
		t.Fatalf("nbrs = %v, want [1 2]", nbrs)
	}
	if weights[0] != 2 {
		t.Errorf("weights[0] = %v, want 2", weights[0])
	}
	if mults[0] != 2 {
		t.Errorf("mults[0] = %v, want 2", mults[0])
	}
	if weights[1] != 2 || mults[1] != 1 {
		t.Errorf("weights[1], mults[1] = %v, %v, want 2, 1", weights[1], mults[1])
	}

	// All three cells must have been returned to the free pool.
	if a.free != a.Cap() {
		t.Errorf("free = %d, want %d (all cells returned)", a.free, a.Cap())
	}
	if a.First(0) != none {
		t.Errorf("First(0) = %d, want empty after purge", a.First(0))
	}
}

func TestPoolExhaustionPanics(t *testing.T) {
	a := NewArena(2, 1)
	a.Add(0, 1, 1, 1)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on pool exhaustion")
		}
	}()
	a.Add(0, 1, 1, 1)
}

func TestSelfLoopPanics(t *testing.T) {
	a := NewArena(2, 4)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on self-loop add")
		}
	}()
	a.Add(0, 1, 1, 0)
}

func TestLinkReverse(t *testing.T) {
	a := NewArena(2, 4)
	i := a.Add(0, 1, 1, 1)
	j := a.Add(1, 1, 1, 0)
	a.Link(i, j)
	if a.Reverse(i) != j || a.Reverse(j) != i {
		t.Errorf("Link did not set mutual reverse pointers")
	}
}

func TestKillSkippedByPurge(t *testing.T) {
	a := NewArena(3, 8)
	i := a.Add(0, 5, 1, 1)
	a.Add(0, 3, 1, 2)
	a.Kill(i)

	s := NewScratch(3)
	diag, _, nbrs, _, _ := a.Purge(0, s, false, 0, nil)
	if diag != 3 {
		t.Errorf("diag = %v, want 3 (killed cell excluded)", diag)
	}
	if len(nbrs) != 1 || nbrs[0] != 2 {
		t.Errorf("nbrs = %v, want [2]", nbrs)
	}
}

func TestCapEdgeCapsMultiplicity(t *testing.T) {
	a := NewArena(2, 8)
	a.Add(0, 1, 100, 1) // weight 1, inflated multiplicity
	xhat := [][]float64{{0, 0}, {1, 0}}
	s := NewScratch(2)
	_, multSum, _, _, mults := a.Purge(0, s, true, 2, xhat)
	// cap = rho * w * dist^2 = 2 * 1 * 1 = 2, well below the raw count of 100.
	if mults[0] != 2 {
		t.Errorf("mults[0] = %v, want capped to 2", mults[0])
	}
	if multSum != 2 {
		t.Errorf("multSum = %v, want 2", multSum)
	}
}
