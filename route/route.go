package route

import (
	"container/heap"
	"context"
	"math"

	"github.com/Sudhanva-BR/Autonomous-Drone-Delivery-Simulation/skygrid"
)

// moveOffsets are the four unit grid moves: right, left, down, up.
// No diagonals, no staying in place.
var moveOffsets = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Solve computes the minimum-time route from cell (0,0) to the
// bottom-right cell of g. The drone starts with a full battery
// (Options.Budget) at the altitude of its starting building.
//
// Returns:
//
//   - Plan: the minimum total time plus one witness path of states with
//     per-state arrival times, origin to destination inclusive.
//   - err:  ErrNoRoute if the destination is unreachable, a validation
//     sentinel for bad inputs, or the context's error on cancellation.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Budget must be ≥ 0 (ErrNegativeBudget).
//  3. Recharge must be ≥ 0 (ErrNegativeRecharge).
//
// Complexity: O(V log V) time, O(V) space, where V is the number of
// reachable (row, col, battery, altitude) states. See the package doc.
func Solve(g *skygrid.Grid, opts ...Option) (Plan, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return Plan{}, ErrNilGrid
	}
	if cfg.Budget < 0 {
		return Plan{}, ErrNegativeBudget
	}
	if cfg.Recharge < 0 {
		return Plan{}, ErrNegativeRecharge
	}

	// 2) Normalize the context: default to Background if unset.
	ctx := cfg.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	// 3) Prepare the mutable search state. The dist and parent maps are
	//    exclusively owned by this runner for the whole search.
	r := &runner{
		grid:    g,
		options: cfg,
		ctx:     ctx,
		dist:    make(map[State]int64),
		parent:  make(map[State]State),
		pq:      make(statePQ, 0, g.Rows()*g.Cols()),
	}

	// 4) Seed the origin state and run the main loop.
	r.init()
	best, goal, err := r.process()
	if err != nil {
		return Plan{}, err
	}

	// 5) No destination state was ever popped: explicit no-route outcome.
	if best == math.MaxInt64 {
		return Plan{}, ErrNoRoute
	}

	// 6) Walk parent links back to the origin and reverse.
	return Plan{Time: best, Path: r.reconstruct(goal)}, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	grid    *skygrid.Grid   // read-only input, borrowed for the search
	options Options         // configuration (budget, recharge, stations)
	ctx     context.Context // cancellation, checked between expansions
	dist    map[State]int64 // state → best-known arrival time
	parent  map[State]State // state → predecessor on the best-known path
	pq      statePQ         // min-heap of *stateItem, lazy decrease-key
}

// init records the origin state at time 0 and pushes it onto the heap.
// The origin flies at the altitude of its own building with a full battery.
func (r *runner) init() {
	start := State{
		Row:      0,
		Col:      0,
		Battery:  r.options.Budget,
		Altitude: r.grid.Height(0, 0),
	}
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: start, time: 0})
}

// process is the core pop loop. It repeatedly extracts the state with the
// minimum arrival time, skips stale entries, records destination pops, and
// expands everything else.
//
// Loop termination conditions:
//
//   - The heap becomes empty (no further states reachable).
//   - EarlyStop is set and the destination cell is popped for the first
//     time; pop order is by time, so that pop is already globally minimal.
//
// Returns the best destination time (math.MaxInt64 if never reached), the
// winning destination state, and the context error on cancellation.
func (r *runner) process() (int64, State, error) {
	var (
		best      int64 = math.MaxInt64
		bestState State
	)
	lastRow, lastCol := r.grid.Rows()-1, r.grid.Cols()-1

	for r.pq.Len() > 0 {
		// 1) Honor cancellation between expansions.
		if err := r.ctx.Err(); err != nil {
			return 0, State{}, err
		}

		// 2) Pop the smallest-time item from the heap.
		item := heap.Pop(&r.pq).(*stateItem)

		// 3) Lazy deletion: discard the entry if the map already holds a
		//    strictly better time for this exact state.
		if d, ok := r.dist[item.state]; ok && d < item.time {
			continue
		}

		// 4) Destination is a cell condition, independent of battery and
		//    altitude. Destination states are finalized, never expanded.
		if item.state.Row == lastRow && item.state.Col == lastCol {
			if item.time < best {
				best, bestState = item.time, item.state
			}
			if r.options.EarlyStop {
				break
			}
			continue
		}

		// 5) Relax the four unit moves out of this state.
		r.expand(item.state, item.time)
	}

	return best, bestState, nil
}

// expand generates the valid moves out of state s (arrival time t),
// applying the climb cost model and station recharge, and pushes every
// strict improvement onto the heap.
func (r *runner) expand(s State, t int64) {
	for _, d := range moveOffsets {
		nr, nc := s.Row+d[0], s.Col+d[1]
		if !r.grid.InBounds(nr, nc) {
			continue
		}

		// Base cost: 1 second and 1 battery unit per move.
		nt := t + 1
		nb := s.Battery - 1
		alt := s.Altitude

		// Climb only if the next building is taller than the current
		// altitude; the altitude is a ceiling, never a floor.
		if h := r.grid.Height(nr, nc); h > alt {
			climb := h - alt
			nt += climb
			nb -= climb
			alt = h
		}

		// A move that exhausts the battery is not generated.
		if nb < 0 {
			continue
		}

		// Recharge on arrival, clamped to capacity, before the state key
		// is formed: the stored state reflects post-recharge battery.
		if r.options.Stations.Contains(nr, nc) {
			nb = min(r.options.Budget, nb+r.options.Recharge)
		}

		next := State{Row: nr, Col: nc, Battery: nb, Altitude: alt}
		if known, ok := r.dist[next]; !ok || nt < known {
			r.dist[next] = nt
			r.parent[next] = s
			heap.Push(&r.pq, &stateItem{state: next, time: nt})
		}
	}
}

// reconstruct walks parent links from the winning destination state back
// to the origin (identified by position only; the origin state is the
// unique entry at (0,0)) and returns the path in origin→destination order,
// each step carrying its recorded arrival time.
func (r *runner) reconstruct(goal State) []Step {
	var rev []Step
	cur := goal
	for {
		rev = append(rev, Step{State: cur, Time: r.dist[cur]})
		if cur.Row == 0 && cur.Col == 0 {
			break
		}
		cur = r.parent[cur]
	}

	path := make([]Step, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}

	return path
}

// stateItem represents a state and its arrival time from the origin.
// It is stored in the priority queue to order states by increasing time.
type stateItem struct {
	state State
	time  int64
}

// statePQ is a min-heap (priority queue) of *stateItem, ordered by
// stateItem.time ascending. We use the “lazy-decrease-key” approach: when
// a shorter time to an existing state is found, a new *stateItem is
// pushed. The outdated entry remains but is ignored when popped (checked
// against the dist map).
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller time → higher priority.
// Ties pop in arbitrary order.
func (pq statePQ) Less(i, j int) bool { return pq[i].time < pq[j].time }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the smallest element from the heap.
// Called by heap.Pop; returns interface{} that must be cast to *stateItem.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
