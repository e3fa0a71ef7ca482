package hydraulic

// ElectricPump is a variable-displacement pump driven by a fixed-speed
// electric motor with first-order spool-up/spool-down dynamics about a
// nominal rpm. Electric pumps ignore electrical-bus availability per the
// spec's non-goals: they are commanded with a plain Boolean start/stop.
type ElectricPump struct {
	active bool
	rpm    float64 // 0..NominalRPM

	pump *pump
}

const (
	// ElectricPumpNominalRPM is the rpm an electric pump spools to/from.
	ElectricPumpNominalRPM = 7600.0
	// ElectricPumpSpoolUpTime is how long a full 0->nominal spool-up takes.
	ElectricPumpSpoolUpTime = 4.0 // seconds
	// ElectricPumpSpoolDownTime is how long a full nominal->0 spool-down takes.
	ElectricPumpSpoolDownTime = 4.0 // seconds

	electricDisplacementDynamics = 1.0 // no filtering: instantaneous
)

// NewElectricPump builds an electric pump, initially stopped at 0 rpm.
func NewElectricPump() (*ElectricPump, error) {
	p, err := newPump(pumpPressureBreakpoints, electricDisplacementCarac, electricDisplacementDynamics)
	if err != nil {
		return nil, err
	}
	return &ElectricPump{pump: p}, nil
}

// Start commands the pump on; spool-up dynamics handle the transition.
func (e *ElectricPump) Start() { e.active = true }

// Stop commands the pump off; spool-down dynamics handle the transition.
func (e *ElectricPump) Stop() { e.active = false }

// Active reports the last commanded start/stop state.
func (e *ElectricPump) Active() bool { return e.active }

// RPM returns the pump's current modeled rpm.
func (e *ElectricPump) RPM() float64 { return e.rpm }

// Update advances the pump by dt seconds against the given loop pressure
// (psi).
func (e *ElectricPump) Update(dt, loopPressure float64) {
	if e.active && e.rpm < ElectricPumpNominalRPM {
		e.rpm += (ElectricPumpNominalRPM / ElectricPumpSpoolUpTime) * dt
	} else if !e.active && e.rpm > 0 {
		e.rpm -= (ElectricPumpNominalRPM / ElectricPumpSpoolDownTime) * dt
	}

	if e.rpm > ElectricPumpNominalRPM {
		e.rpm = ElectricPumpNominalRPM
	}
	if e.rpm < 0 {
		e.rpm = 0
	}

	e.pump.update(dt, loopPressure, e.rpm)
}

func (e *ElectricPump) DeltaVolMax() float64 { return e.pump.DeltaVolMax() }
func (e *ElectricPump) DeltaVolMin() float64 { return e.pump.DeltaVolMin() }
