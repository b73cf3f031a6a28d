// Package scenario defines the Scenario type and sentinel errors for the
// wire format.
package scenario

import (
	"errors"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/skygrid"
)

// Sentinel errors for decoding and validation.
var (
	// ErrShortInput indicates the token stream ended before all required
	// fields were read.
	ErrShortInput = errors.New("scenario: unexpected end of input")

	// ErrBadToken indicates a token that is not a valid integer.
	ErrBadToken = errors.New("scenario: malformed integer token")

	// ErrBadDimensions indicates non-positive grid dimensions or a
	// negative station count in the header.
	ErrBadDimensions = errors.New("scenario: grid dimensions must be positive")

	// ErrValidation is the base error wrapped by every Validate failure.
	ErrValidation = errors.New("scenario: invalid input")
)

// MaxGridDim caps validated grid dimensions, mirroring the HTTP
// front end's upper bound on solver work per request.
const MaxGridDim = 1000

// Scenario is a fully decoded solver input. Stations are 0-indexed.
type Scenario struct {
	Rows, Cols int
	Budget     int64
	Recharge   int64
	Heights    [][]int64
	Stations   []skygrid.Coord
}
