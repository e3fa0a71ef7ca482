package hydraulic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineDrivenPumpStartsInactive(t *testing.T) {
	edp, err := NewEngineDrivenPump()
	assert.NoError(t, err)
	assert.False(t, edp.Active())
}

func TestEngineDrivenPumpZeroRPMWhileInactive(t *testing.T) {
	edp, err := NewEngineDrivenPump()
	assert.NoError(t, err)

	edp.Update(0.025, 2800, 60) // not started
	assert.Zero(t, edp.DeltaVolMax())
}

func TestEngineDrivenPumpDeliversOnceActive(t *testing.T) {
	edp, err := NewEngineDrivenPump()
	assert.NoError(t, err)

	edp.Start()
	for i := 0; i < 50; i++ {
		edp.Update(0.1, 2000, 55)
	}
	assert.Greater(t, edp.DeltaVolMax(), 0.0)
}

// TestMonotoneDisplacementAboveShoulder checks the monotone
// displacement law: for a fixed rpm, max pump output in dt is
// non-increasing in loop pressure above 2900 psi.
func TestMonotoneDisplacementAboveShoulder(t *testing.T) {
	pressures := []float64{2900, 2950, 3000, 3050, 3100, 3500}
	var last float64 = -1
	for _, p := range pressures {
		pm, err := newPump(pumpPressureBreakpoints, edpDisplacementCarac, 1.0)
		assert.NoError(t, err)
		pm.update(0.1, p, 4000)
		got := pm.DeltaVolMax()
		if last >= 0 {
			assert.LessOrEqual(t, got, last+1e-9)
		}
		last = got
	}
}

func TestElectricPumpSpoolsUpAndDown(t *testing.T) {
	ep, err := NewElectricPump()
	assert.NoError(t, err)

	ep.Start()
	for i := 0; i < 40; i++ { // 4s @ 100ms = full spool-up time
		ep.Update(0.1, 14.7)
	}
	assert.InDelta(t, ElectricPumpNominalRPM, ep.RPM(), 1.0)

	ep.Stop()
	for i := 0; i < 40; i++ {
		ep.Update(0.1, 14.7)
	}
	assert.InDelta(t, 0.0, ep.RPM(), 1.0)
}

func TestRatPumpRunsAtNominalRPM(t *testing.T) {
	rp, err := NewRatPump()
	assert.NoError(t, err)

	rp.Update(0.1, 1000)
	assert.Greater(t, rp.DeltaVolMax(), 0.0)
	// 1000 psi is a breakpoint (1.15 in3/rev); no filtering, so one step
	// delivers the full nominal-rpm flow over dt.
	assert.InDelta(t, pumpFlow(RatPumpNormalRPM, 1.15)*0.1, rp.DeltaVolMax(), 1e-9)
}
