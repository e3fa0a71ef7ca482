package aircraft

// LogicInputs mirrors the airframe state the hydraulic logic reads to
// decide PTU eligibility: weight-on-wheels, engine masters, parking
// brake, nosewheel-steering tow, and cargo door operation. Kept
// separate from OverheadPanel because these are airframe-state signals
// a pilot does not directly flip like a pushbutton.
type LogicInputs struct {
	WeightOnWheels    bool
	ParkingBrakeOn    bool
	Eng1MasterOn      bool
	Eng2MasterOn      bool
	NoseWheelTow      bool
	CargoDoorInMotion bool
}

// ptuInhibited reports whether a cargo door operation is currently
// suppressing the PTU: engagement is inhibited while a cargo door is
// moving and the yellow electric pump pushbutton is off, since the
// door's hydraulic motor shares the yellow loop.
func (l LogicInputs) ptuInhibited(yellowEpumpPb PbPosition) bool {
	return l.CargoDoorInMotion && yellowEpumpPb == PbOff
}

// ptuEligible implements the PTU auto-engagement condition of the
// cockpit-to-pump logic: on ground, or both engines running, or both
// engines off, or neither parked-brake-set nor under tow.
func (l LogicInputs) ptuEligible() bool {
	bothEnginesRunning := l.Eng1MasterOn && l.Eng2MasterOn
	bothEnginesOff := !l.Eng1MasterOn && !l.Eng2MasterOn
	freeToRoll := !l.ParkingBrakeOn && !l.NoseWheelTow
	return l.WeightOnWheels || bothEnginesRunning || bothEnginesOff || freeToRoll
}
