package wildfire

import "errors"

var (
	// ErrInvalidConfiguration is returned when grid or engine parameters are
	// out of range. Construction fails instead of producing a degenerate world.
	ErrInvalidConfiguration = errors.New("wildfire: invalid configuration")

	// ErrNoIgnitableCell is returned when a seed fire is requested but no
	// flammable cell exists.
	ErrNoIgnitableCell = errors.New("wildfire: no ignitable cell")
)
