package scenario

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/route"
	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/skygrid"
)

// Decode reads a complete solver input from r. Station coordinates are
// shifted from the wire's 1-indexed form to 0-indexed.
//
// Decode enforces only what it needs to allocate safely (positive
// dimensions, non-negative station count); everything else is the
// caller's choice via Validate.
// Complexity: O(N×M + S).
func Decode(r io.Reader) (*Scenario, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (int64, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("scenario: read: %w", err)
			}
			return 0, ErrShortInput
		}
		v, err := strconv.ParseInt(sc.Text(), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadToken, sc.Text())
		}

		return v, nil
	}

	// 1) Header: N M B K.
	n, err := next()
	if err != nil {
		return nil, err
	}
	m, err := next()
	if err != nil {
		return nil, err
	}
	if n <= 0 || m <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, n, m)
	}
	budget, err := next()
	if err != nil {
		return nil, err
	}
	recharge, err := next()
	if err != nil {
		return nil, err
	}

	// 2) N×M heights, row-major.
	heights := make([][]int64, n)
	for i := range heights {
		row := make([]int64, m)
		for j := range row {
			if row[j], err = next(); err != nil {
				return nil, err
			}
		}
		heights[i] = row
	}

	// 3) Station count, then 1-indexed pairs.
	count, err := next()
	if err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: station count %d", ErrBadDimensions, count)
	}
	stations := make([]skygrid.Coord, 0, count)
	for i := int64(0); i < count; i++ {
		r1, err := next()
		if err != nil {
			return nil, err
		}
		c1, err := next()
		if err != nil {
			return nil, err
		}
		stations = append(stations, skygrid.Coord{Row: int(r1) - 1, Col: int(c1) - 1})
	}

	return &Scenario{
		Rows:     int(n),
		Cols:     int(m),
		Budget:   budget,
		Recharge: recharge,
		Heights:  heights,
		Stations: stations,
	}, nil
}

// Grid builds the immutable skygrid.Grid for this scenario.
func (s *Scenario) Grid() (*skygrid.Grid, error) {
	return skygrid.New(s.Heights)
}

// StationSet builds the recharge-station set for this scenario.
func (s *Scenario) StationSet() skygrid.StationSet {
	return skygrid.NewStationSet(s.Stations...)
}

// Validate applies the HTTP front end's pre-flight rules. Every failure
// wraps ErrValidation with a human-readable reason.
//
// Rules: positive dimensions capped at MaxGridDim, a rectangular height
// matrix with non-negative entries, positive battery capacity,
// non-negative recharge amount, and in-bounds (already 0-indexed)
// station coordinates.
func (s *Scenario) Validate() error {
	if s.Rows <= 0 || s.Cols <= 0 {
		return fmt.Errorf("%w: grid dimensions must be positive", ErrValidation)
	}
	if s.Rows > MaxGridDim || s.Cols > MaxGridDim {
		return fmt.Errorf("%w: grid dimensions too large (max %dx%d)", ErrValidation, MaxGridDim, MaxGridDim)
	}
	if s.Budget <= 0 {
		return fmt.Errorf("%w: battery capacity must be positive", ErrValidation)
	}
	if s.Recharge < 0 {
		return fmt.Errorf("%w: recharge amount must be non-negative", ErrValidation)
	}
	if len(s.Heights) != s.Rows {
		return fmt.Errorf("%w: expected %d height rows, got %d", ErrValidation, s.Rows, len(s.Heights))
	}
	for i, row := range s.Heights {
		if len(row) != s.Cols {
			return fmt.Errorf("%w: height row %d has %d entries, expected %d", ErrValidation, i, len(row), s.Cols)
		}
		for j, h := range row {
			if h < 0 {
				return fmt.Errorf("%w: negative height at (%d,%d)", ErrValidation, i, j)
			}
		}
	}
	for i, st := range s.Stations {
		if st.Row < 0 || st.Row >= s.Rows || st.Col < 0 || st.Col >= s.Cols {
			return fmt.Errorf("%w: station %d at (%d,%d) is outside grid bounds", ErrValidation, i+1, st.Row, st.Col)
		}
	}

	return nil
}

// EncodePlan writes a solved route as a single-line JSON object
// {"time":…,"path":[…]} followed by a newline.
func EncodePlan(w io.Writer, p route.Plan) error {
	enc := json.NewEncoder(w)
	return enc.Encode(p)
}

// EncodeNoRoute writes the unreachable marker: the literal -1 and a
// newline, with no path field.
func EncodeNoRoute(w io.Writer) error {
	_, err := io.WriteString(w, "-1\n")
	return err
}
