package routing

import "errors"

// Sentinel errors. Invalid configuration is rejected before a search starts, an infeasible
// query is not an error (see SearchResult.IsFound).
var (
	// ErrWaypointOutOfRange indicates a start or end index outside the distance matrix.
	ErrWaypointOutOfRange = errors.New("routing: waypoint index out of range")

	// ErrNegativeBudget indicates a negative or NaN max cost.
	ErrNegativeBudget = errors.New("routing: max cost must be a non-negative number")

	// ErrMaxLengthTooSmall indicates a route length constraint below 2 (start and end always count).
	ErrMaxLengthTooSmall = errors.New("routing: max length must be at least 2")

	// ErrForbiddenEndpoint indicates that the forbidden set contains the start or end waypoint.
	ErrForbiddenEndpoint = errors.New("routing: forbidden set contains the start or end waypoint")

	// ErrRatioOutOfRange indicates a round trip fuel ratio outside [0, 1].
	ErrRatioOutOfRange = errors.New("routing: ratio must be within [0, 1]")

	// ErrBudgetBelowDirectDistance indicates a round trip budget below twice the direct distance.
	ErrBudgetBelowDirectDistance = errors.New("routing: max cost is below twice the direct start-end distance")

	// ErrOneWayMatrix indicates a round trip on a distance matrix that only permits one direction.
	ErrOneWayMatrix = errors.New("routing: round trip needs a distance matrix permitting both directions")

	// ErrInvariantViolation indicates broken relaxation bookkeeping, the result would be wrong.
	ErrInvariantViolation = errors.New("routing: search invariant violated")
)
