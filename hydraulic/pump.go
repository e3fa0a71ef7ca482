package hydraulic

// Unit conversion factors, centralized here rather than scattered as
// magic numbers at each conversion site.
const (
	cubicInchesPerGallon = 231.0
	secondsPerMinute     = 60.0
)

// PressureSource is the capability shared by everything that can push
// volume into a loop: the generic Pump substrate, ElectricPump,
// EngineDrivenPump, and RatPump. HydLoop accepts a heterogeneous slice of
// this interface rather than any pump inheritance hierarchy.
type PressureSource interface {
	// DeltaVolMax is the filtered maximum volume (gallons) this source can
	// deliver over the sub-step that just ran.
	DeltaVolMax() float64
	// DeltaVolMin is the guaranteed minimum volume (gallons) this source
	// delivers over the sub-step that just ran. Zero for every pump kind
	// modeled here: all are variable-displacement with no floor.
	DeltaVolMin() float64
}

// displacement table breakpoints shared by EDP/electric/RAT pumps: psi
// on the x-axis, in3/rev on the y-axis. The shoulder at 3000-3050 psi is
// what lets a variable-displacement pump auto-regulate toward its set
// pressure: displacement collapses toward zero as pressure climbs past
// the target, which is how the loop avoids needing an explicit valve.
var pumpPressureBreakpoints = [9]float64{0, 500, 1000, 1500, 2800, 2900, 3000, 3050, 3500}

var edpDisplacementCarac = [9]float64{2.4, 2.4, 2.4, 2.4, 2.4, 2.4, 2.0, 0.0, 0.0}
var electricDisplacementCarac = [9]float64{0.263, 0.263, 0.263, 0.263, 0.263, 0.263, 0.163, 0.0, 0.0}
var ratDisplacementCarac = [9]float64{1.15, 1.15, 1.15, 1.15, 1.15, 1.15, 0.9, 0.0, 0.0}

// pump is the substrate shared by every pressure source: it looks up
// instantaneous displacement from loop pressure, turns that into flow at
// a given rpm, and low-pass filters the result into delta_vol_max.
//
// ElectricPump, EngineDrivenPump, and RatPump each own one of these and
// differ only in how they derive rpm and which displacement table they
// pass in: the shared capability is PressureSource, not an inheritance
// hierarchy.
type pump struct {
	pressBreakpoints    [9]float64
	displacementCarac   [9]float64
	displacementDynamic float64 // (0,1]: low-pass coefficient, 1 = instantaneous

	deltaVolMax float64 // gallons, filtered
	deltaVolMin float64 // gallons
}

func newPump(pressBreakpoints, displacementCarac [9]float64, displacementDynamic float64) (*pump, error) {
	if err := validateTable(pressBreakpoints[:], displacementCarac[:]); err != nil {
		return nil, err
	}
	return &pump{
		pressBreakpoints:    pressBreakpoints,
		displacementCarac:   displacementCarac,
		displacementDynamic: displacementDynamic,
	}, nil
}

// update advances the pump substrate by dt seconds given the current
// loop pressure (psi) and the pump's rpm for this sub-step.
func (p *pump) update(dt, loopPressure, rpm float64) {
	displacement := p.displacement(loopPressure)
	flow := pumpFlow(rpm, displacement)

	alpha := p.displacementDynamic
	p.deltaVolMax = (1-alpha)*p.deltaVolMax + alpha*(flow*dt)
	p.deltaVolMin = 0

	assertFinite("pump.deltaVolMax", p.deltaVolMax)
}

func (p *pump) displacement(loopPressure float64) float64 {
	return interpolate(p.pressBreakpoints[:], p.displacementCarac[:], loopPressure)
}

// pumpFlow converts rpm and displacement (in3/rev) into flow in
// gallons/second: Q = rpm * displacement / 231 / 60.
func pumpFlow(rpm, displacement float64) float64 {
	return rpm * displacement / cubicInchesPerGallon / secondsPerMinute
}

func (p *pump) DeltaVolMax() float64 { return p.deltaVolMax }
func (p *pump) DeltaVolMin() float64 { return p.deltaVolMin }
