// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package alias

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
)

func TestDrawMatchesDistribution(t *testing.T) {
	p := []float64{1, 2, 3, 4}
	total := 10.0
	src := rand.New(rand.NewSource(1))
	s := New(p, src)

	const draws = 1000000
	counts := make([]int, len(p))
	for _, i := range s.DrawMany(draws) {
		counts[i]++
	}
	for i, w := range p {
		want := w / total
		got := float64(counts[i]) / draws
		// 3-sigma bound on a binomial proportion estimate.
		sigma := math.Sqrt(want * (1 - want) / draws)
		if math.Abs(got-want) > 3*sigma+1e-3 {
			t.Errorf("frequency[%d] = %v, want %v (±%v)", i, got, want, 3*sigma)
		}
	}
}

func TestResidualBound(t *testing.T) {
	p := []float64{1, 1, 1, 1, 1}
	s := New(p, rand.New(rand.NewSource(2)))
	if s.Residual() > float64(len(p))*eps*1e6 {
		t.Errorf("Residual() = %v, too large", s.Residual())
	}
}

func TestNewPanicsOnNonPositiveWeight(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on non-positive weight")
		}
	}()
	New([]float64{1, 0, 1}, rand.New(rand.NewSource(1)))
}
