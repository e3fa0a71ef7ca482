package hydraulic

// Ptu (Power Transfer Unit) is a bidirectional hydraulic-to-hydraulic
// pump-motor coupling two loops without mixing their fluid. It is
// logically shared by the two loops it couples: treat it as a
// pre-computation step that reads both loops and writes its own flow
// fields, which each loop then reads during its own update - this keeps
// the loop the sole writer of its own state and the PTU the sole writer
// of its own buffered output.
type Ptu struct {
	enabled     bool
	activeLeft  bool
	activeRight bool
	flowToLeft  float64 // gallons/s, signed: negative = leaving this loop
	flowToRight float64 // gallons/s, signed
	lastFlow    float64 // gallons/s, unsigned magnitude
}

const (
	ptuFlowLowPassLeft  = 0.1
	ptuFlowLowPassRight = 0.1
	// ptuAggressiveness caps how much of a loop's total pump capacity the
	// PTU may draw through it, so the PTU can't outcompete the loop's own
	// pressure sources for reservoir flow.
	ptuAggressiveness = 0.6

	ptuLeftToRightMaxFlow  = 16.0 / 60.0 // gal/s
	ptuLeftToRightGain     = 0.0058 / 60.0
	ptuLeftToRightTransfer = 0.81

	ptuRightToLeftMaxFlow  = 34.0 / 60.0 // gal/s
	ptuRightToLeftGain     = 0.0125 / 60.0
	ptuRightToLeftTransfer = 0.70

	ptuActivationThresholdPsi   = 500.0
	ptuDeactivationOverPressure = 3001.0
	ptuDeactivationUnderPress   = 500.0
)

// NewPtu builds a disabled, idle PTU.
func NewPtu() *Ptu {
	return &Ptu{}
}

// Enabling sets whether the PTU is allowed to engage. On the
// enabled->disabled edge it deactivates the PTU at once, clearing the
// active flags and residual flows synchronously rather than leaving them
// until the next deactivation condition fires; while disabled, Update
// does not recompute flows.
func (p *Ptu) Enabling(enable bool) {
	wasEnabled := p.enabled
	p.enabled = enable
	if wasEnabled && !enable {
		p.clear()
	}
}

func (p *Ptu) clear() {
	p.activeLeft = false
	p.activeRight = false
	p.flowToLeft = 0
	p.flowToRight = 0
	p.lastFlow = 0
}

// Enabled reports whether the PTU is currently allowed to engage.
func (p *Ptu) Enabled() bool { return p.enabled }

// ActiveLeft reports whether the left-to-right transfer branch is engaged.
func (p *Ptu) ActiveLeft() bool { return p.activeLeft }

// ActiveRight reports whether the right-to-left transfer branch is engaged.
func (p *Ptu) ActiveRight() bool { return p.activeRight }

// Active reports whether either transfer branch is engaged.
func (p *Ptu) Active() bool { return p.activeLeft || p.activeRight }

// FlowToLeft is this sub-step's signed flow (gallons/s) into the left loop.
func (p *Ptu) FlowToLeft() float64 { return p.flowToLeft }

// FlowToRight is this sub-step's signed flow (gallons/s) into the right loop.
func (p *Ptu) FlowToRight() float64 { return p.flowToRight }

// Update runs the PTU's hysteretic activation logic against the left and
// right loops' published pressure and current_max_flow. It is a no-op
// when the PTU is disabled.
func (p *Ptu) Update(loopLeft, loopRight *HydLoop) {
	if !p.enabled {
		return
	}

	deltaP := loopLeft.loopPressure - loopRight.loopPressure

	switch {
	case p.activeLeft || (!p.activeRight && deltaP > ptuActivationThresholdPsi):
		v := ptuLeftToRightMaxFlow
		if loopLeft.loopPressure*ptuLeftToRightGain < v {
			v = loopLeft.loopPressure * ptuLeftToRightGain
		}
		if cap := loopLeft.currentMaxFlow * ptuAggressiveness; v > cap {
			v = cap
		}
		v = ptuFlowLowPassLeft*v + (1-ptuFlowLowPassLeft)*p.lastFlow

		p.flowToLeft = -v
		p.flowToRight = v * ptuLeftToRightTransfer
		p.lastFlow = v
		p.activeLeft = true

	case p.activeRight || (!p.activeLeft && deltaP < -ptuActivationThresholdPsi):
		v := ptuRightToLeftMaxFlow
		if loopRight.loopPressure*ptuRightToLeftGain < v {
			v = loopRight.loopPressure * ptuRightToLeftGain
		}
		if cap := loopRight.currentMaxFlow * ptuAggressiveness; v > cap {
			v = cap
		}
		v = ptuFlowLowPassRight*v + (1-ptuFlowLowPassRight)*p.lastFlow

		p.flowToLeft = v * ptuRightToLeftTransfer
		p.flowToRight = -v
		p.lastFlow = v
		p.activeRight = true

	default:
		p.flowToLeft = 0
		p.flowToRight = 0
		p.lastFlow = 0
	}

	if (p.activeRight && loopLeft.loopPressure > ptuDeactivationOverPressure) ||
		(p.activeLeft && loopRight.loopPressure > ptuDeactivationOverPressure) ||
		(p.activeRight && loopRight.loopPressure < ptuDeactivationUnderPress) ||
		(p.activeLeft && loopLeft.loopPressure < ptuDeactivationUnderPress) {
		p.clear()
	}

	assertFinite("ptu.flowToLeft", p.flowToLeft)
	assertFinite("ptu.flowToRight", p.flowToRight)
}
