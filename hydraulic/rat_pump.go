package hydraulic

// RatPump models a ram-air-turbine-driven pump at a fixed nominal rpm
// when deployed. Deployment dynamics (extending the RAT into the
// airstream) are out of scope: this is the pressure source a caller
// attaches to a loop once deployed, running at a fixed nominal rpm.
type RatPump struct {
	pump *pump
}

// RatPumpNormalRPM is the rpm a deployed RAT pump runs at.
const RatPumpNormalRPM = 6000.0

const ratDisplacementDynamics = 1.0 // no filtering

// NewRatPump builds a RAT pump.
func NewRatPump() (*RatPump, error) {
	p, err := newPump(pumpPressureBreakpoints, ratDisplacementCarac, ratDisplacementDynamics)
	if err != nil {
		return nil, err
	}
	return &RatPump{pump: p}, nil
}

// Update advances the pump by dt seconds against the given loop pressure
// (psi), running at the fixed nominal rpm.
func (r *RatPump) Update(dt, loopPressure float64) {
	r.pump.update(dt, loopPressure, RatPumpNormalRPM)
}

func (r *RatPump) DeltaVolMax() float64 { return r.pump.DeltaVolMax() }
func (r *RatPump) DeltaVolMin() float64 { return r.pump.DeltaVolMin() }
