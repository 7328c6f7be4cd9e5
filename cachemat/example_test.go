// SPDX-License-Identifier: MIT

package cachemat_test

import (
	"fmt"

	"github.com/katalvlaran/memomat/cachemat"
	"github.com/katalvlaran/memomat/matrix"
)

// ExampleSelfCaching demonstrates the lazy recompute-on-invalidate protocol:
// the first Inverse call computes, repeats are cache reads, and SetValue
// starts a fresh epoch.
func ExampleSelfCaching() {
	value, _ := matrix.NewFromRows([][]float64{{2, 0}, {0, 4}})
	m := cachemat.NewSelfCaching(value)

	inv, _ := m.Inverse() // computes
	d00, _ := inv.At(0, 0)
	d11, _ := inv.At(1, 1)
	fmt.Println("diag:", d00, d11)

	inv, _ = m.Inverse() // cached, no recomputation
	_ = inv

	next, _ := matrix.NewFromRows([][]float64{{4, 0}, {0, 8}})
	m.SetValue(next) // cache cleared, next call recomputes
	inv, _ = m.Inverse()
	d00, _ = inv.At(0, 0)
	d11, _ = inv.At(1, 1)
	fmt.Println("diag:", d00, d11)

	// Output:
	// diag: 0.5 0.25
	// diag: 0.25 0.125
}
