// Package dronesim computes minimum-time delivery routes for a drone
// flying over a city grid of buildings, under a battery budget with
// mid-route recharge stations.
//
// 🚁 What is in here?
//
//	A small, focused solver built from three library packages and two binaries:
//		• skygrid/  — immutable city grid (building heights) + recharge-station set
//		• route/    — the state-space search engine: Dijkstra over
//		              (row, col, battery, altitude) states with a lazy-deletion min-heap
//		• scenario/ — the wire format: whitespace-token input, JSON result output,
//		              and pre-flight validation for the HTTP surface
//
//	Binaries:
//		• cmd/solver — pure stdin→stdout transformation (tokens in, JSON or -1 out)
//		• cmd/routed — HTTP front end: POST /api/run with body limits, a solve
//		               timeout, a concurrency cap, and Prometheus /metrics
//
// The cost model in one breath: every unit grid move costs 1 second and
// 1 battery unit; entering a building taller than the current flying
// altitude additionally costs the climb delta in both time and battery,
// and raises the altitude permanently. Shorter buildings are flown over
// for free. Landing on a recharge station restores battery, clamped to
// the capacity.
//
// Quick ASCII example (heights, S marks a recharge station):
//
//	0 3 1
//	0 S 0
//	2 0 0
//
// Start at the top-left roof, finish at the bottom-right one, and never
// let a single move drive the battery below zero.
package dronesim
