package instance_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wavepick/instance"
)

// ExampleParse reads a small instance: 2 orders, 3 items, 2 aisles.
// Order 0 demands items 0 and 1, order 1 demands item 2; aisle 0 stocks
// items 0 and 2, aisle 1 stocks item 1; the wave must pick 3 to 8 units.
func ExampleParse() {
	const text = `2 3 2
2 0 1 1 2
1 2 3
2 0 4 2 5
1 1 4
3 8
`
	ins, err := instance.Parse(strings.NewReader(text))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(ins.NumOrders(), ins.NumItems, ins.NumAisles())
	fmt.Println(ins.WaveSizeLB, ins.WaveSizeUB)
	// Order 0 needs item 0 (in aisle 0) and item 1 (in aisle 1).
	fmt.Println(ins.OrderToAisles(0))
	// Output:
	// 2 3 2
	// 3 8
	// [0 1]
}

// ExampleInstance_ConnectedComponents splits an instance whose two orders
// share no items into independent order/aisle clusters.
func ExampleInstance_ConnectedComponents() {
	ins, err := instance.NewInstance(
		2,
		[][2]int{{0, 1}, {1, 1}},
		[][2]int{{0, 5}, {1, 5}},
		[]int{1, 1},
		[]int{1, 1},
		1, 2,
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, c := range ins.ConnectedComponents() {
		fmt.Println("orders", c.Orders, "aisles", c.Aisles)
	}
	// Output:
	// orders [0] aisles [0]
	// orders [1] aisles [1]
}
