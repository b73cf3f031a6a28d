// Command solver is the pure stdin→stdout route solver: whitespace
// tokens in, a JSON plan (or -1 for an unreachable destination) out.
// Malformed input is a fatal precondition violation: the process exits
// without producing any output.
package main

import (
	"errors"
	"os"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/route"
	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/scenario"
)

func main() {
	sc, err := scenario.Decode(os.Stdin)
	if err != nil {
		os.Exit(1)
	}

	grid, err := sc.Grid()
	if err != nil {
		os.Exit(1)
	}

	plan, err := route.Solve(grid,
		route.Budget(sc.Budget),
		route.Recharge(sc.Recharge),
		route.Stations(sc.StationSet()),
	)
	switch {
	case errors.Is(err, route.ErrNoRoute):
		if err := scenario.EncodeNoRoute(os.Stdout); err != nil {
			os.Exit(1)
		}
	case err != nil:
		os.Exit(1)
	default:
		if err := scenario.EncodePlan(os.Stdout, plan); err != nil {
			os.Exit(1)
		}
	}
}
