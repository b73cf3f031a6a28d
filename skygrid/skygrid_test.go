package skygrid_test

import (
	"errors"
	"testing"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/skygrid"
)

//----------------------------------------------------------------------------//
// Grid construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name    string
		heights [][]int64
		err     error
	}{
		{"EmptyRows", [][]int64{}, skygrid.ErrEmptyGrid},
		{"EmptyCols", [][]int64{{}}, skygrid.ErrEmptyGrid},
		{"NonRectangular", [][]int64{{1, 2}, {3}}, skygrid.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := skygrid.New(tc.heights)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.heights, err, tc.err)
			}
		})
	}
}

// TestNew_DeepCopy checks that mutating the source slice after New does
// not leak into the Grid.
func TestNew_DeepCopy(t *testing.T) {
	src := [][]int64{
		{1, 2},
		{3, 4},
	}
	g, err := skygrid.New(src)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	src[0][1] = 99
	src[1] = []int64{7, 8}

	if got := g.Height(0, 1); got != 2 {
		t.Errorf("Height(0,1) = %d after source mutation; want 2", got)
	}
	if got := g.Height(1, 0); got != 3 {
		t.Errorf("Height(1,0) = %d after source mutation; want 3", got)
	}
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := skygrid.New([][]int64{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Fatalf("dims = %d×%d; want 2×3", g.Rows(), g.Cols())
	}

	valid := [][2]int{{0, 0}, {1, 2}, {1, 1}}
	for _, rc := range valid {
		if !g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", rc[0], rc[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {2, 0}, {0, 3}, {1, -1}}
	for _, rc := range invalid {
		if g.InBounds(rc[0], rc[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", rc[0], rc[1])
		}
	}
}

//----------------------------------------------------------------------------//
// StationSet
//----------------------------------------------------------------------------//

// TestStationSet covers membership, duplicate collapse, and ordering.
func TestStationSet(t *testing.T) {
	set := skygrid.NewStationSet(
		skygrid.Coord{Row: 1, Col: 2},
		skygrid.Coord{Row: 0, Col: 0},
		skygrid.Coord{Row: 1, Col: 2}, // duplicate
	)

	if set.Len() != 2 {
		t.Errorf("Len() = %d; want 2", set.Len())
	}
	if !set.Contains(1, 2) || !set.Contains(0, 0) {
		t.Error("Contains missed a member coordinate")
	}
	if set.Contains(2, 1) {
		t.Error("Contains(2,1)=true; want false")
	}

	want := []skygrid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 2}}
	got := set.Coords()
	if len(got) != len(want) {
		t.Fatalf("Coords() = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Coords()[%d] = %v; want %v", i, got[i], want[i])
		}
	}
}

// TestStationSet_ZeroValue ensures the zero value behaves as an empty set.
func TestStationSet_ZeroValue(t *testing.T) {
	var set skygrid.StationSet
	if set.Len() != 0 {
		t.Errorf("zero StationSet Len() = %d; want 0", set.Len())
	}
	if set.Contains(0, 0) {
		t.Error("zero StationSet Contains(0,0)=true; want false")
	}
}
