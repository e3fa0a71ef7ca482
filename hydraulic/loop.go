package hydraulic

import "github.com/samber/lo"

// LoopColor identifies one of the three hydraulic circuits.
type LoopColor int

const (
	Green LoopColor = iota
	Yellow
	Blue
)

func (c LoopColor) String() string {
	switch c {
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

const (
	// MinPressurePsi is the floor loop_pressure never drops below - the
	// line is never fully depressurized to zero.
	MinPressurePsi = 14.7

	accumulatorGasPreChargePsi = 1885.0
	accumulatorMaxVolumeGal    = 0.264

	pressureLowPassFilter = 0.75
	deltaVolLowPassFilter = 0.1

	regulationTargetPressurePsi = 3000.0
)

var accumulatorPressBreakpoints = [9]float64{0, 5, 10, 50, 100, 200, 500, 1000, 10000}
var accumulatorFlowCarac = [9]float64{0, 0.005, 0.008, 0.01, 0.02, 0.08, 0.15, 0.35, 0.5}

// HydLoop is one of the three hydraulic circuits: a reservoir, a
// compressible high-pressure section, a gas-charged accumulator, static
// leakage, and whatever pumps/PTUs are wired to it by the caller each
// sub-step. HydLoop is the sole writer of its own fields; pumps and the
// PTU only publish buffered outputs it reads.
type HydLoop struct {
	fluid Fluid
	color LoopColor

	connectedToPtuLeft  bool
	connectedToPtuRight bool

	loopPressure float64 // psi, >= MinPressurePsi

	loopVolume    float64 // gallons, current fill of the low-pressure body
	maxLoopVolume float64 // gallons, target when fully primed

	highPressureVolume float64 // gallons, effective compressible volume

	reservoirVolume    float64 // gallons, >= 0
	maxReservoirVolume float64 // gallons, bound from construction

	accumulatorGasPressure float64 // psi
	accumulatorGasVolume   float64 // gallons
	accumulatorFluidVolume float64 // gallons

	ptuActive bool

	currentDeltaVol float64 // gallons, last sub-step's net volume change
	currentFlow     float64 // gallons/s
	currentMaxFlow  float64 // gallons/s, total pump capacity this sub-step
}

// NewHydLoop builds a loop. At most one of connectedToPtuLeft/Right
// should be true (the loop is attached to at most one PTU side);
// highPressureVolume must be positive.
func NewHydLoop(
	color LoopColor,
	connectedToPtuLeft, connectedToPtuRight bool,
	loopVolume, maxLoopVolume, highPressureVolume, reservoirVolume float64,
	fluid Fluid,
) (*HydLoop, error) {
	if highPressureVolume <= 0 {
		return nil, errNonPositiveVolume
	}
	return &HydLoop{
		fluid:                  fluid,
		color:                  color,
		connectedToPtuLeft:     connectedToPtuLeft,
		connectedToPtuRight:    connectedToPtuRight,
		loopPressure:           MinPressurePsi,
		loopVolume:             loopVolume,
		maxLoopVolume:          maxLoopVolume,
		highPressureVolume:     highPressureVolume,
		reservoirVolume:        reservoirVolume,
		maxReservoirVolume:     reservoirVolume,
		accumulatorGasPressure: accumulatorGasPreChargePsi,
		accumulatorGasVolume:   accumulatorMaxVolumeGal,
		accumulatorFluidVolume: 0,
	}, nil
}

func (l *HydLoop) Color() LoopColor           { return l.color }
func (l *HydLoop) Pressure() float64          { return l.loopPressure }
func (l *HydLoop) LoopVolume() float64        { return l.loopVolume }
func (l *HydLoop) ReservoirVolume() float64   { return l.reservoirVolume }
func (l *HydLoop) AccumulatorGasPressure() float64 { return l.accumulatorGasPressure }
func (l *HydLoop) AccumulatorGasVolume() float64   { return l.accumulatorGasVolume }
func (l *HydLoop) AccumulatorFluidVolume() float64 { return l.accumulatorFluidVolume }
func (l *HydLoop) CurrentDeltaVol() float64        { return l.currentDeltaVol }
func (l *HydLoop) CurrentFlow() float64            { return l.currentFlow }
func (l *HydLoop) CurrentMaxFlow() float64         { return l.currentMaxFlow }
func (l *HydLoop) PtuActive() bool                 { return l.ptuActive }

// IsPressurised reports whether the loop is above the cockpit-indicated
// pressurization threshold.
func (l *HydLoop) IsPressurised() bool { return l.loopPressure >= 300.0 }

// usableReservoirFlow caps a requested flow (gal/s) to what the
// reservoir can actually sustain over dt seconds.
func (l *HydLoop) usableReservoirFlow(requested, dt float64) float64 {
	maxFlow := l.reservoirVolume / dt
	if requested > maxFlow {
		return maxFlow
	}
	return requested
}

// volToTarget is the exact volume of fluid needed to reach targetPress,
// directly from the bulk-modulus equation.
func (l *HydLoop) volToTarget(targetPress float64) float64 {
	return (targetPress - l.loopPressure) * l.highPressureVolume / l.fluid.BulkModulus()
}

// Update integrates the loop by dt seconds given the pressure sources
// feeding it (pumps, aggregated via the shared PressureSource
// capability) and the PTUs it is wired to, plus an optional consumer
// sink (gallons drawn by actuators this sub-step; 0 until actuator
// physics is implemented upstream).
func (l *HydLoop) Update(dt float64, sources []PressureSource, ptus []*Ptu, consumerSink float64) {
	deltaVolMax := lo.SumBy(sources, PressureSource.DeltaVolMax)
	deltaVolMin := lo.SumBy(sources, PressureSource.DeltaVolMin)

	l.currentMaxFlow = deltaVolMax / dt

	var deltaVol, reservoirReturn float64

	// Static leak.
	staticLeak := 0.04 * dt * (l.loopPressure - MinPressurePsi) / 3000.0
	deltaVol -= staticLeak
	reservoirReturn += staticLeak

	// PTU exchange.
	ptuAct := false
	for _, ptu := range ptus {
		if ptu.ActiveLeft() || ptu.ActiveRight() {
			ptuAct = true
		}

		var flow float64
		switch {
		case l.connectedToPtuLeft:
			flow = ptu.FlowToLeft()
		case l.connectedToPtuRight:
			flow = ptu.FlowToRight()
		default:
			continue
		}

		var actual float64
		if flow > 0 {
			actual = l.usableReservoirFlow(flow, dt)
			l.reservoirVolume -= actual * dt
		} else {
			actual = flow
			reservoirReturn -= actual * dt
		}
		deltaVol += actual * dt
	}
	l.ptuActive = ptuAct

	// Priming.
	if l.loopVolume < l.maxLoopVolume {
		difference := l.maxLoopVolume - l.loopVolume
		available := l.reservoirVolume
		if deltaVolMax < available {
			available = deltaVolMax
		}
		primed := available
		if difference < primed {
			primed = difference
		}
		deltaVolMax -= primed
		l.loopVolume += primed
		l.reservoirVolume -= primed
	}

	// Accumulator.
	accDeltaP := l.accumulatorGasPressure - l.loopPressure
	flowVariation := interpolate(accumulatorPressBreakpoints[:], accumulatorFlowCarac[:], absF(accDeltaP))

	if accDeltaP > 0 {
		volFromAcc := flowVariation * dt
		if l.accumulatorFluidVolume < volFromAcc {
			volFromAcc = l.accumulatorFluidVolume
		}
		l.accumulatorFluidVolume -= volFromAcc
		l.accumulatorGasVolume += volFromAcc
		deltaVol += volFromAcc
	} else {
		volToAcc := flowVariation * dt
		if deltaVol < volToAcc {
			volToAcc = deltaVol
		}
		if volToAcc < 0 {
			volToAcc = 0
		}
		l.accumulatorFluidVolume += volToAcc
		l.accumulatorGasVolume -= volToAcc
		deltaVol -= volToAcc
	}
	l.accumulatorGasPressure = accumulatorGasPreChargePsi * accumulatorMaxVolumeGal / (accumulatorMaxVolumeGal - l.accumulatorFluidVolume)

	// Consumer sink (actuator physics is out of scope; caller-supplied
	// scalar, 0 until wired to real actuators upstream).
	deltaVol -= consumerSink

	// Regulation: how much more volume is needed to reach 3000 psi,
	// over and above what's already been added this step.
	need := l.volToTarget(regulationTargetPressurePsi) - deltaVol
	add := clampF(need, deltaVolMin, deltaVolMax)
	if add > l.reservoirVolume {
		add = l.reservoirVolume
	}
	deltaVol += add

	// Bulk-modulus pressure step, low-pass filtered.
	pressDelta := deltaVol / l.highPressureVolume * l.fluid.BulkModulus()
	newRawPressure := l.loopPressure + pressDelta
	l.loopPressure = pressureLowPassFilter*newRawPressure + (1-pressureLowPassFilter)*l.loopPressure
	if l.loopPressure < MinPressurePsi {
		l.loopPressure = MinPressurePsi
	}

	// Reservoir update.
	l.reservoirVolume -= add
	l.reservoirVolume += reservoirReturn
	if l.reservoirVolume < 0 {
		l.reservoirVolume = 0
	}
	if l.reservoirVolume > l.maxReservoirVolume {
		l.reservoirVolume = l.maxReservoirVolume
	}

	// Volume and diagnostics, low-pass filtered to damp one-step noise.
	deltaVol = deltaVolLowPassFilter*deltaVol + (1-deltaVolLowPassFilter)*l.currentDeltaVol
	l.loopVolume += deltaVol
	l.currentDeltaVol = deltaVol
	l.currentFlow = deltaVol / dt

	assertFinite("loop.loopPressure", l.loopPressure)
	assertFinite("loop.loopVolume", l.loopVolume)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// clampF clamps v between lo and hi, per the regulation clamp's
// documented (and intentionally preserved) quirk: when v is below lo,
// the result is lo even if lo is itself positive - the source forbids
// withdrawing from the high-pressure volume via regulation.
func clampF(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
