// Package routing implements the budget-constrained label-setting search over monotone
// waypoint sequences and its round-trip composition.
//
// A search runs over the expanded state space (waypoint, waypoints visited so far). Edges only go
// from a waypoint to a later one in the leg direction, which lets the queue drain waypoints in
// index order: labels further from the target are popped first, then longer paths, then cheaper
// ones. The first acceptable label popped at the target is the route that visits the most
// waypoints within the budget, at minimal cost among those.
//
// Round trips (start -> end -> start) are split into a forward and a backward search. The forward
// leg gets a share of the budget, the backward leg gets the rest and may not revisit any interior
// waypoint of the forward leg.
//
// Searches are deterministic and exhaustive. A LabelSettingSearch keeps per-call state and must not
// be used from several goroutines at once; create one per goroutine, the DistanceMatrix can be shared.
package routing
