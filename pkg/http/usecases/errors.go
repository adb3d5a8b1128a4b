package usecases

import "errors"

var (
	ERRNOROUTEFOUND   = errors.New("no route within the budget")
	ERRNOWAYPOINTNEAR = errors.New("no waypoint near the requested coordinate")
)
