package intensify_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wavepick/instance"
	"github.com/katalvlaran/wavepick/intensify"
	"github.com/katalvlaran/wavepick/solution"
)

// ExampleArchive_Offer admits a feasible solution once: the second offer of
// the same chosen sets is rejected as a duplicate.
func ExampleArchive_Offer() {
	ins, err := instance.Parse(strings.NewReader("1 2 2\n2 0 2 1 2\n1 0 2\n1 1 2\n4 4\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	s := solution.New(ins)
	s.ApplyAddOrder(0)
	s.Repair()

	ar := intensify.NewArchive(3)
	fmt.Println(ar.Offer(s))
	fmt.Println(ar.Offer(s))
	fmt.Println(ar.Len())
	// Output:
	// true
	// false
	// 1
}
