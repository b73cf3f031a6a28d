// Package route_test provides examples demonstrating how to run the
// drone route search. Each example is runnable via “go test -run Example”.
package route_test

import (
	"fmt"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/route"
	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/skygrid"
)

// ExampleSolve demonstrates a climb along a single corridor. The strip is
// 1×3, so the witness path is unique and fully deterministic.
func ExampleSolve() {
	// 1) Build the city: flat pad, a 2-unit building, flat pad.
	g, err := skygrid.New([][]int64{{0, 2, 0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Solve with a battery capacity of 5 and no stations.
	plan, err := route.Solve(g, route.Budget(5))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the total time and every visited state.
	fmt.Printf("time=%d\n", plan.Time)
	for _, s := range plan.Path {
		fmt.Printf("(%d,%d) battery=%d altitude=%d t=%d\n", s.Row, s.Col, s.Battery, s.Altitude, s.Time)
	}
	// Output:
	// time=4
	// (0,0) battery=5 altitude=0 t=0
	// (0,1) battery=2 altitude=2 t=3
	// (0,2) battery=1 altitude=2 t=4
}

// ExampleSolve_recharge demonstrates a corridor that is only crossable
// thanks to a mid-route recharge station.
func ExampleSolve_recharge() {
	g, err := skygrid.New([][]int64{{0, 0, 0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Budget 1 covers a single move; the station at (0,1) refills it.
	plan, err := route.Solve(g,
		route.Budget(1),
		route.Recharge(1),
		route.Stations(skygrid.NewStationSet(skygrid.Coord{Row: 0, Col: 1})),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("time=%d\n", plan.Time)
	for _, s := range plan.Path {
		fmt.Printf("(%d,%d) battery=%d t=%d\n", s.Row, s.Col, s.Battery, s.Time)
	}
	// Output:
	// time=2
	// (0,0) battery=1 t=0
	// (0,1) battery=1 t=1
	// (0,2) battery=0 t=2
}

// ExampleSolve_noRoute demonstrates the explicit unreachable outcome.
func ExampleSolve_noRoute() {
	g, err := skygrid.New([][]int64{{0}, {0}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	_, err = route.Solve(g, route.Budget(0))
	fmt.Println(err)
	// Output:
	// route: destination unreachable under the battery budget
}
