package hydraulic

// EngineDrivenPump is a variable-displacement pump whose rpm derives
// from its engine's N2 speed. It has no first-order speed dynamic of its
// own - the slow displacement filter (alpha=0.05) supplies the transient
// instead, letting one filter do double duty rather than stacking
// redundant ones.
type EngineDrivenPump struct {
	active bool
	pump   *pump
}

const (
	// EngineDrivenPumpMaxRPM is the rpm ceiling regardless of N2.
	EngineDrivenPumpMaxRPM = 4000.0

	engineDrivenDisplacementDynamics = 0.05
)

// NewEngineDrivenPump builds an engine-driven pump, initially inactive.
func NewEngineDrivenPump() (*EngineDrivenPump, error) {
	p, err := newPump(pumpPressureBreakpoints, edpDisplacementCarac, engineDrivenDisplacementDynamics)
	if err != nil {
		return nil, err
	}
	return &EngineDrivenPump{pump: p}, nil
}

// Start commands the pump active.
func (e *EngineDrivenPump) Start() { e.active = true }

// Stop commands the pump inactive; rpm is forced to zero regardless of
// N2 until started again.
func (e *EngineDrivenPump) Stop() { e.active = false }

// Active reports the last commanded start/stop state.
func (e *EngineDrivenPump) Active() bool { return e.active }

// Update advances the pump by dt seconds against the given loop pressure
// (psi) and engine N2 (ratio in percent, e.g. 55.0 for 55%).
func (e *EngineDrivenPump) Update(dt, loopPressure, n2Percent float64) {
	rpm := n2Percent * n2Percent * 0.08 * EngineDrivenPumpMaxRPM / 100.0
	if rpm > EngineDrivenPumpMaxRPM {
		rpm = EngineDrivenPumpMaxRPM
	}
	if !e.active {
		rpm = 0
	}
	e.pump.update(dt, loopPressure, rpm)
}

func (e *EngineDrivenPump) DeltaVolMax() float64 { return e.pump.DeltaVolMax() }
func (e *EngineDrivenPump) DeltaVolMin() float64 { return e.pump.DeltaVolMin() }
