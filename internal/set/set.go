// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package set provides minimal integer set helpers used by the tree
// builder and the PCG driver's connected-component decomposition.
package set

// Ints is a set of int identifiers.
type Ints map[int]struct{}

// Add inserts v into the set.
func (s Ints) Add(v int) {
	s[v] = struct{}{}
}

// Has reports whether v is a member of the set.
func (s Ints) Has(v int) bool {
	_, ok := s[v]
	return ok
}

// Remove deletes v from the set, if present.
func (s Ints) Remove(v int) {
	delete(s, v)
}

// Count reports the number of elements in the set.
func (s Ints) Count() int {
	return len(s)
}
