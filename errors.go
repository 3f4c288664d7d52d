package semicircle

import "errors"

// Construction errors returned by New.
var (
	// ErrRadiusUnrepresentable is returned when the radius does not fit in
	// the coordinate type.
	ErrRadiusUnrepresentable = errors.New("semicircle: radius not representable in coordinate type")

	// ErrRadiusTooLarge is returned for radii at or above MaxRadius.
	ErrRadiusTooLarge = errors.New("semicircle: radius is too large")
)
