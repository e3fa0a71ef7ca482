package aircraft

import (
	"math"
	"time"

	"hydrosim/hydraulic"
)

// FixedStep is the physics sub-step period the controller integrates
// at, independent of the host's frame rate.
const FixedStep = 100 * time.Millisecond

// A320Hydraulic is the fixed-step driver wiring together the three
// loops, the two engine-driven pumps, the yellow and blue electric
// pumps, and the PTU, plus the cockpit-facing panel and logic-input
// mirror that decide what those pumps and the PTU do each frame.
type A320Hydraulic struct {
	Green  *hydraulic.HydLoop
	Yellow *hydraulic.HydLoop
	Blue   *hydraulic.HydLoop

	Edp1        *hydraulic.EngineDrivenPump // wired to Green
	Edp2        *hydraulic.EngineDrivenPump // wired to Yellow
	YellowEpump *hydraulic.ElectricPump
	BlueEpump   *hydraulic.ElectricPump
	Ptu         *hydraulic.Ptu

	Overhead *OverheadPanel
	Logic    LogicInputs

	totalSimTimeElapsed time.Duration
	lagTimeAccumulator  time.Duration
}

// NewA320Hydraulic builds the controller's loops and pumps from cfg and
// wires them per the A320's fixed loop/pump assignment: EDP1 on Green,
// EDP2 on Yellow, yellow and blue electric pumps on their namesake
// loops, PTU between Green and Yellow.
func NewA320Hydraulic(cfg hydraulic.AircraftConfig) (*A320Hydraulic, error) {
	fluid, err := hydraulic.NewFluid(cfg.BulkModulusPsi)
	if err != nil {
		return nil, err
	}

	loops := make(map[hydraulic.LoopColor]*hydraulic.HydLoop, len(cfg.Loops))
	for _, lc := range cfg.Loops {
		loop, err := lc.BuildLoop(fluid)
		if err != nil {
			return nil, err
		}
		loops[loop.Color()] = loop
	}

	edp1, err := hydraulic.NewEngineDrivenPump()
	if err != nil {
		return nil, err
	}
	edp2, err := hydraulic.NewEngineDrivenPump()
	if err != nil {
		return nil, err
	}
	yellowEpump, err := hydraulic.NewElectricPump()
	if err != nil {
		return nil, err
	}
	blueEpump, err := hydraulic.NewElectricPump()
	if err != nil {
		return nil, err
	}

	return &A320Hydraulic{
		Green:       loops[hydraulic.Green],
		Yellow:      loops[hydraulic.Yellow],
		Blue:        loops[hydraulic.Blue],
		Edp1:        edp1,
		Edp2:        edp2,
		YellowEpump: yellowEpump,
		BlueEpump:   blueEpump,
		Ptu:         hydraulic.NewPtu(),
		Overhead:    NewOverheadPanel(),
	}, nil
}

// NewDefaultA320Hydraulic builds a controller from the embedded default
// A320 loop geometry.
func NewDefaultA320Hydraulic() (*A320Hydraulic, error) {
	cfg, err := hydraulic.DefaultA320Config()
	if err != nil {
		return nil, err
	}
	return NewA320Hydraulic(cfg)
}

// Update advances the controller by one host frame. It decouples the
// fixed-step physics from the host's variable dt: when the frame plus
// the banked lagTimeAccumulator is shorter than FixedStep, the total is
// banked and no physics update runs; otherwise the frame runs as many
// FixedStep sub-steps as that total covers, carrying any remainder
// forward.
func (a *A320Hydraulic) Update(ctx UpdateContext) {
	a.totalSimTimeElapsed += ctx.Delta
	timeToCatch := ctx.Delta + a.lagTimeAccumulator

	steps := float64(timeToCatch) / float64(FixedStep)
	if steps < 1 {
		a.lagTimeAccumulator = timeToCatch
		return
	}

	n := int(math.Floor(steps))
	a.lagTimeAccumulator = time.Duration((steps - float64(n)) * float64(FixedStep))

	a.applyCockpitLogic()

	dt := FixedStep.Seconds()
	for i := 0; i < n; i++ {
		a.Ptu.Update(a.Green, a.Yellow)

		a.Edp1.Update(dt, a.Green.Pressure(), ctx.Eng1N2Percent)
		a.Edp2.Update(dt, a.Yellow.Pressure(), ctx.Eng2N2Percent)
		a.YellowEpump.Update(dt, a.Yellow.Pressure())
		a.BlueEpump.Update(dt, a.Blue.Pressure())

		a.Green.Update(dt, []hydraulic.PressureSource{a.Edp1}, []*hydraulic.Ptu{a.Ptu}, 0)
		a.Yellow.Update(dt, []hydraulic.PressureSource{a.Edp2, a.YellowEpump}, []*hydraulic.Ptu{a.Ptu}, 0)
		a.Blue.Update(dt, []hydraulic.PressureSource{a.BlueEpump}, nil, 0)
	}
}

// applyCockpitLogic implements the cockpit-to-pump table: EDP and blue
// electric pump pushbuttons follow the ordinary auto/off convention;
// the yellow electric pump's is inverted relative to the others (off
// commands it running, on commands it stopped). That wiring is suspect,
// but it is preserved as-is rather than silently corrected.
func (a *A320Hydraulic) applyCockpitLogic() {
	switch a.Overhead.Edp1Pb {
	case PbAuto:
		a.Edp1.Start()
	case PbOff:
		a.Edp1.Stop()
	}
	switch a.Overhead.Edp2Pb {
	case PbAuto:
		a.Edp2.Start()
	case PbOff:
		a.Edp2.Stop()
	}
	switch a.Overhead.BlueEpumpPb {
	case PbAuto:
		a.BlueEpump.Start()
	case PbOff:
		a.BlueEpump.Stop()
	}
	switch a.Overhead.YellowEpumpPb {
	case PbOff:
		a.YellowEpump.Start()
	case PbOn:
		a.YellowEpump.Stop()
	}

	inhibited := a.Logic.ptuInhibited(a.Overhead.YellowEpumpPb)
	enable := a.Overhead.PtuPb == PbAuto && a.Logic.ptuEligible() && !inhibited
	a.Ptu.Enabling(enable)
}

// IsGreenPressurised, IsYellowPressurised and IsBluePressurised are the
// cockpit-indicated loop pressurization readouts.
func (a *A320Hydraulic) IsGreenPressurised() bool  { return a.Green.IsPressurised() }
func (a *A320Hydraulic) IsYellowPressurised() bool { return a.Yellow.IsPressurised() }
func (a *A320Hydraulic) IsBluePressurised() bool   { return a.Blue.IsPressurised() }

// LagTimeAccumulator exposes the banked sub-step remainder, mainly for
// tests asserting the fixed-step driver stays bounded.
func (a *A320Hydraulic) LagTimeAccumulator() time.Duration { return a.lagTimeAccumulator }

// TotalSimTimeElapsed is the cumulative wall-clock-equivalent time the
// controller has been driven for.
func (a *A320Hydraulic) TotalSimTimeElapsed() time.Duration { return a.totalSimTimeElapsed }
