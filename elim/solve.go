// Copyright ©2024 The Gonum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package elim

// Solve applies ldl as an approximate LDLᵀ preconditioner to b (already
// centered, i.e. mean-zero), returning an approximate solution to L x = b
// via a forward sweep through ldl's columns in elimination order,
// diagonal scaling, and a backward sweep in reverse order, per spec §4.8.
// The returned vector is re-centered to zero mean before being returned,
// matching the invariant that both the Laplacian null space and this
// solve are quotiented by the all-ones vector.
func Solve(ldl *LDLinv, b []float64) []float64 {
	n := ldl.N
	y := make([]float64, n)
	copy(y, b)

	for k, v := range ldl.Order {
		j0, j1 := ldl.ColPtr[k], ldl.ColPtr[k+1]
		if j1 == j0 {
			continue
		}
		for jj := j0; jj < j1-1; jj++ {
			r := ldl.Row[jj]
			f := ldl.F[jj]
			y[r] += f * y[v]
			y[v] *= 1 - f
		}
		sinkRow := ldl.Row[j1-1]
		y[sinkRow] += y[v]
		if d := ldl.D[v]; d != 0 {
			y[v] /= d
		}
	}

	for k := len(ldl.Order) - 1; k >= 0; k-- {
		v := ldl.Order[k]
		j0, j1 := ldl.ColPtr[k], ldl.ColPtr[k+1]
		if j1 == j0 {
			continue
		}
		sinkRow := ldl.Row[j1-1]
		y[v] += y[sinkRow]
		for jj := j1 - 2; jj >= j0; jj-- {
			r := ldl.Row[jj]
			f := ldl.F[jj]
			y[v] = (1-f)*y[v] + f*y[r]
		}
	}

	center(y)
	return y
}

func center(y []float64) {
	var mean float64
	for _, v := range y {
		mean += v
	}
	mean /= float64(len(y))
	for i := range y {
		y[i] -= mean
	}
}
