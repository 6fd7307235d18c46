package seawater

import "errors"

var (
	// ErrTooFewLevels is returned when a level-differencing computation gets a single pressure level
	ErrTooFewLevels = errors.New("at least two pressure levels required")

	// ErrTooFewStations is returned when a station-differencing computation gets a single station
	ErrTooFewStations = errors.New("at least two stations required")
)
