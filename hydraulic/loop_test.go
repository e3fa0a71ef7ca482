package hydraulic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustFluid(t *testing.T) Fluid {
	t.Helper()
	f, err := NewFluid(HyJetIVBulkModulusPsi)
	require.NoError(t, err)
	return f
}

// TestGreenLoopEDPOnly is scenario S1: engine-driven pump only, at a
// constant 55% N2, spun up and then shut down.
func TestGreenLoopEDPOnly(t *testing.T) {
	loop, err := NewHydLoop(Green, true, false, 10.2, 10.2, 8.0, 3.3, mustFluid(t))
	require.NoError(t, err)

	edp, err := NewEngineDrivenPump()
	require.NoError(t, err)
	edp.Start()

	const dt = 0.1
	const n2 = 55.0

	for x := 0; x < 600; x++ {
		switch {
		case x == 50:
			assert.GreaterOrEqual(t, loop.Pressure(), 2950.0)
		case x == 200:
			assert.GreaterOrEqual(t, loop.Pressure(), 2950.0)
			edp.Stop()
		case x >= 500:
			assert.LessOrEqual(t, loop.Pressure(), 250.0)
		}

		edp.Update(dt, loop.Pressure(), n2)
		loop.Update(dt, []PressureSource{edp}, nil, 0)
	}
}

// TestYellowLoopElectricPumpOnly is scenario S2.
func TestYellowLoopElectricPumpOnly(t *testing.T) {
	loop, err := NewHydLoop(Yellow, false, true, 26.00, 26.41, 10.0, 3.83, mustFluid(t))
	require.NoError(t, err)

	ep, err := NewElectricPump()
	require.NoError(t, err)
	ep.Start()

	const dt = 0.1

	for x := 0; x < 800; x++ {
		if x == 400 {
			assert.GreaterOrEqual(t, loop.Pressure(), 2800.0)
			ep.Stop()
		}
		if x >= 600 {
			assert.LessOrEqual(t, loop.Pressure(), 200.0)
		}

		ep.Update(dt, loop.Pressure())
		loop.Update(dt, []PressureSource{ep}, nil, 0)
	}
}

// TestBlueLoopElectricPumpOnly is scenario S3.
func TestBlueLoopElectricPumpOnly(t *testing.T) {
	loop, err := NewHydLoop(Blue, false, false, 15.85, 15.85, 8.0, 1.5, mustFluid(t))
	require.NoError(t, err)

	ep, err := NewElectricPump()
	require.NoError(t, err)
	ep.Start()

	const dt = 0.1

	for x := 0; x < 800; x++ {
		if x == 400 {
			assert.GreaterOrEqual(t, loop.Pressure(), 2800.0)
			ep.Stop()
		}
		if x >= 600 {
			assert.LessOrEqual(t, loop.Pressure(), 100.0)
		}

		ep.Update(dt, loop.Pressure())
		loop.Update(dt, []PressureSource{ep}, nil, 0)
	}
}

func TestLoopInvariants(t *testing.T) {
	loop, err := NewHydLoop(Green, true, false, 10.2, 10.2, 8.0, 3.3, mustFluid(t))
	require.NoError(t, err)

	edp, err := NewEngineDrivenPump()
	require.NoError(t, err)
	edp.Start()

	for i := 0; i < 300; i++ {
		edp.Update(0.1, loop.Pressure(), 80)
		loop.Update(0.1, []PressureSource{edp}, nil, 0)

		assert.GreaterOrEqual(t, loop.Pressure(), MinPressurePsi)
		assert.GreaterOrEqual(t, loop.ReservoirVolume(), 0.0)
		assert.LessOrEqual(t, loop.ReservoirVolume(), 3.3)
		assert.InDelta(t, accumulatorMaxVolumeGal, loop.AccumulatorFluidVolume()+loop.AccumulatorGasVolume(), 1e-9)

		if loop.AccumulatorFluidVolume() > 0 {
			boyle := loop.AccumulatorGasPressure() * loop.AccumulatorGasVolume()
			precharge := accumulatorGasPreChargePsi * accumulatorMaxVolumeGal
			assert.InDelta(t, precharge, boyle, precharge*0.01)
		}
	}
}

func TestZeroDtIsIdempotent(t *testing.T) {
	loop, err := NewHydLoop(Green, true, false, 10.2, 10.2, 8.0, 3.3, mustFluid(t))
	require.NoError(t, err)

	edp, err := NewEngineDrivenPump()
	require.NoError(t, err)
	edp.Start()

	for i := 0; i < 50; i++ {
		edp.Update(0.1, loop.Pressure(), 80)
		loop.Update(0.1, []PressureSource{edp}, nil, 0)
	}

	before := loop.Pressure()
	beforeVol := loop.LoopVolume()
	loop.Update(1e-12, nil, nil, 0)
	assert.InDelta(t, before, loop.Pressure(), 1e-3)
	assert.InDelta(t, beforeVol, loop.LoopVolume(), 1e-6)
}
