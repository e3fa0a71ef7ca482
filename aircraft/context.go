package aircraft

import "time"

// UpdateContext is the per-frame environment snapshot the controller is
// driven with: the host's wall-clock delta plus whatever flight
// parameters the hydraulic logic depends on. Engine speed is carried
// per engine since the EDPs are wired one per engine.
type UpdateContext struct {
	Delta                time.Duration
	IndicatedAirspeedKts float64
	AltitudeFt           float64
	OutsideAirTempC      float64
	OnGround             bool

	Eng1N2Percent float64
	Eng2N2Percent float64
}
