package hydraulic

// Fluid holds the bulk modulus of the hydraulic fluid: the stiffness
// relating a fractional volume compression to a pressure rise,
// ΔP = ΔV/V · K. It is immutable for the duration of a run.
type Fluid struct {
	bulkModulus float64 // psi
}

// NewFluid builds a Fluid from its bulk modulus in psi. Returns an error
// if bulkModulus is not strictly positive.
func NewFluid(bulkModulus float64) (Fluid, error) {
	if bulkModulus <= 0 {
		return Fluid{}, errNonPositiveBulk
	}
	return Fluid{bulkModulus: bulkModulus}, nil
}

// BulkModulus returns the fluid's bulk modulus in psi.
func (f Fluid) BulkModulus() float64 {
	return f.bulkModulus
}

// HyJetIVBulkModulusPsi is the bulk modulus of Exxon HyJet IV hydraulic fluid used on
// the A320, converted from 1.45 GPa to psi.
const HyJetIVBulkModulusPsi = 210305.0
