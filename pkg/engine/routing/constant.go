package routing

const (
	// initial capacity of the label table, per waypoint of the leg
	LABELS_PER_WAYPOINT = 4

	ROUND_TRIP_FORWARD_LEG  = "forward"
	ROUND_TRIP_BACKWARD_LEG = "backward"
)
