// Package route defines core types and configuration options for the
// drone route search.
package route

import (
	"context"
	"errors"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/skygrid"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *skygrid.Grid was passed to Solve.
	ErrNilGrid = errors.New("route: grid is nil")

	// ErrNegativeBudget indicates a negative battery capacity.
	ErrNegativeBudget = errors.New("route: battery budget must be non-negative")

	// ErrNegativeRecharge indicates a negative recharge amount.
	ErrNegativeRecharge = errors.New("route: recharge amount must be non-negative")

	// ErrNoRoute indicates that the destination cell is unreachable under
	// every battery/altitude combination. It is a first-class outcome, not
	// a failure of the search itself.
	ErrNoRoute = errors.New("route: destination unreachable under the battery budget")
)

// State is the unit of search identity: a drone position plus its
// remaining battery and current flying altitude. Two states are equal iff
// all four fields match; State is comparable and used directly as a map key.
type State struct {
	Row      int   `json:"row"`
	Col      int   `json:"col"`
	Battery  int64 `json:"battery"`
	Altitude int64 `json:"altitude"`
}

// Step is one visited state on the winning path together with its
// arrival time.
type Step struct {
	State
	Time int64 `json:"time"`
}

// Plan is the result of a successful search: the minimum total time and
// one witness path from origin to destination, inclusive.
type Plan struct {
	Time int64  `json:"time"`
	Path []Step `json:"path"`
}

// Options configures the behavior of the route search.
//
// Budget    – battery capacity B (also the origin battery). Must be ≥ 0.
// Recharge  – units restored on arrival at a station, clamped to Budget. Must be ≥ 0.
// Stations  – recharge-station coordinates; the zero value means none.
// EarlyStop – halt at the first destination pop instead of draining the queue.
// Ctx       – optional cancellation context; nil means context.Background().
type Options struct {
	Budget    int64
	Recharge  int64
	Stations  skygrid.StationSet
	EarlyStop bool
	Ctx       context.Context
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// Budget sets the battery capacity B. The drone starts with a full battery.
func Budget(b int64) Option {
	return func(o *Options) {
		o.Budget = b
	}
}

// Recharge sets the amount K restored when landing on a station.
func Recharge(k int64) Option {
	return func(o *Options) {
		o.Recharge = k
	}
}

// Stations sets the recharge-station set.
func Stations(s skygrid.StationSet) Option {
	return func(o *Options) {
		o.Stations = s
	}
}

// WithEarlyStop makes the search halt at the first destination pop.
// Because pop order is by time, this does not change the reported time.
func WithEarlyStop() Option {
	return func(o *Options) {
		o.EarlyStop = true
	}
}

// WithContext attaches a cancellation context to the search. The pop loop
// checks it between expansions and aborts with the context's error.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.Ctx = ctx
	}
}

// DefaultOptions returns an Options struct with sensible defaults:
// zero budget, zero recharge, no stations, full queue drain, Background
// context. Use functional options to override.
func DefaultOptions() Options {
	return Options{
		Budget:   0,
		Recharge: 0,
	}
}
