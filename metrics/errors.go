package metrics

import "errors"

var (
	// ErrBadZone reports a gamma band outside [0,180] or with g0 >= g1.
	ErrBadZone = errors.New("metrics: invalid gamma zone")

	// ErrBadStep reports a non-positive integration step.
	ErrBadStep = errors.New("metrics: integration step must be positive")

	// ErrBadScale reports a non-positive lumen scale passed to BUG.
	ErrBadScale = errors.New("metrics: lumen scale must be positive")
)
