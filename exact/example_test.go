package exact_test

import (
	"fmt"

	"github.com/katalvlaran/gatsp/distance"
	"github.com/katalvlaran/gatsp/exact"
)

// ExampleSolve finds the perimeter of a square given in crossing order.
func ExampleSolve() {
	tbl, _ := distance.New([]distance.City{
		{ID: "A", X: 0, Y: 0},
		{ID: "C", X: 10, Y: 10},
		{ID: "B", X: 0, Y: 10},
		{ID: "D", X: 10, Y: 0},
	})
	res, err := exact.Solve(tbl)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f %v\n", res.Distance, res.Tour)
	// Output: 40.00 [A D C B A]
}
