// Package route implements the minimum-time search for a drone crossing
// a skygrid.Grid under a battery budget with recharge stations.
//
// The search is Dijkstra's algorithm generalized over an augmented state
// graph: nodes are (row, col, battery, altitude) tuples and edges are the
// four unit grid moves. Edge weights are non-negative integers, so the
// first time a destination-cell state is popped from the min-heap its
// time is globally minimal across every battery/altitude combination.
//
// Cost model per move into an adjacent cell:
//
//   - Base cost: 1 time unit and 1 battery unit, any direction.
//   - If the target building is taller than the current flying altitude,
//     the climb delta is added to both time and battery, and the altitude
//     rises to the building height. Altitude never decreases: shorter
//     buildings are overflown at the current altitude for free.
//   - A move that would drive the battery negative is not generated.
//   - Arriving on a recharge station sets battery = min(capacity, battery+K)
//     before the state key is formed.
//
// Complexity:
//
//   - Let V = number of reachable (row, col, battery, altitude) states,
//     bounded by O(N×M×B×A) where A is the count of distinct altitudes
//     (grid heights above the start height, plus the start height).
//   - Time:  O(V log V) — each state is pushed at most once per improvement
//     under the lazy-decrease-key strategy; stale heap entries are skipped.
//   - Space: O(V) for the distance and parent maps. Battery and altitude
//     are part of the state key, so callers bound memory by choosing
//     realistic budgets and grid sizes; no artificial cap is imposed.
//
// Notes on implementation choices:
//
//   - The composite state is a small comparable struct used directly as a
//     map key; no bespoke hashing.
//   - We use a “lazy” decrease-key strategy: duplicates are pushed onto the
//     heap and entries whose recorded time is stale are discarded on pop.
//   - Ties between equal-time states pop in arbitrary heap order, so the
//     witness path (and its final battery/altitude) may vary between
//     equally optimal routes; the reported time is always deterministic.
//   - By default the queue is drained even after the destination is first
//     popped; WithEarlyStop halts at that first pop. The two modes produce
//     the same reported time.
package route
