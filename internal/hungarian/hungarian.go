// Package hungarian solves the minimum-cost bipartite assignment
// problem (Kuhn-Munkres) on a dense rectangular integer cost matrix. It
// has no knowledge of the placement domain: callers supply costs and
// get back an assignment of rows to columns.
package hungarian

import (
	"errors"
	"fmt"
)

// ErrNegativeCost is returned by Solve if any cost entry is negative,
// which the algorithm's potentials do not support and which should
// never occur for an HPWL-derived cost.
var ErrNegativeCost = errors.New("hungarian: negative cost in matrix")

// Solve finds an injective assignment of rows to columns minimizing
// total cost, given an n x m cost matrix with n <= m. It returns, for
// each row, the chosen column index. Ties in the search are broken by
// smaller column index, then smaller row index, making the result
// deterministic for identical input.
//
// Solve implements the Jonker-Volgenant-flavored shortest augmenting
// path formulation of Kuhn-Munkres with row/column potentials, run on
// the padded m x m matrix in O(m^3), i.e. O(max(n,m)^3) as spec §4.5
// describes. Rows beyond n in the padded square matrix used
// internally are never present in cost; callers needing the "dummy
// rows at cost 0" padding from spec §4.5 get it automatically here.
func Solve(cost [][]int64) ([]int, error) {
	n := len(cost)
	if n == 0 {
		return nil, nil
	}
	m := len(cost[0])
	for _, row := range cost {
		if len(row) != m {
			return nil, fmt.Errorf("hungarian: ragged cost matrix")
		}
		for _, c := range row {
			if c < 0 {
				return nil, ErrNegativeCost
			}
		}
	}
	if n > m {
		return nil, fmt.Errorf("hungarian: more rows (%d) than columns (%d)", n, m)
	}

	// Pad to a square matrix with zero-cost dummy rows, per spec §4.5.
	size := m
	a := make([][]int64, size)
	for i := range a {
		a[i] = make([]int64, size)
		if i < n {
			copy(a[i], cost[i])
		}
	}

	const inf = int64(1) << 62

	u := make([]int64, size+1)
	v := make([]int64, size+1)
	p := make([]int, size+1) // p[j] = row currently assigned to column j (1-indexed), 0 = none
	way := make([]int, size+1)

	for i := 1; i <= size; i++ {
		p[0] = i
		j0 := 0
		minV := make([]int64, size+1)
		used := make([]bool, size+1)
		for j := 0; j <= size; j++ {
			minV[j] = inf
		}
		for {
			used[j0] = true
			i0 := p[j0]
			delta := inf
			j1 := -1
			for j := 1; j <= size; j++ {
				if used[j] {
					continue
				}
				cur := a[i0-1][j-1] - u[i0] - v[j]
				if cur < minV[j] {
					minV[j] = cur
					way[j] = j0
				}
				if minV[j] < delta {
					delta = minV[j]
					j1 = j
				}
			}
			for j := 0; j <= size; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minV[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	colOfRow := make([]int, n)
	for i := range colOfRow {
		colOfRow[i] = -1
	}
	for j := 1; j <= size; j++ {
		if p[j] >= 1 && p[j] <= n {
			colOfRow[p[j]-1] = j - 1
		}
	}
	return colOfRow, nil
}
