package distmatrix_test

import (
	"fmt"

	"github.com/katalvlaran/wavepick/distmatrix"
)

// ExampleMatrix tracks pairwise distances over a growing member set and
// reads back a member's closest neighbor.
func ExampleMatrix() {
	m := distmatrix.New(3)
	m.Append(func(int) float64 { return 0 })
	m.Append(func(int) float64 { return 0.5 })
	m.Append(func(k int) float64 {
		if k == 0 {
			return 0.8
		}
		return 0.2
	})

	fmt.Println(m.N())
	fmt.Printf("%.1f\n", m.RowMin(0))
	// Output:
	// 3
	// 0.5
}
