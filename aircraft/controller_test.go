package aircraft

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFixedStepDriverTracksRealTime is scenario S4: random host dt over
// 5s of real time should track total_sim_time_elapsed closely and keep
// the lag accumulator and per-frame sub-step count bounded.
func TestFixedStepDriverTracksRealTime(t *testing.T) {
	a, err := NewDefaultA320Hydraulic()
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))

	var realTime time.Duration
	const target = 5 * time.Second

	for realTime < target {
		dtMs := 2 + rng.Intn(109) // [2,110] ms
		dt := time.Duration(dtMs) * time.Millisecond
		realTime += dt

		stepsBefore := float64(dt+a.lagTimeAccumulator) / float64(FixedStep)
		a.Update(UpdateContext{Delta: dt, Eng1N2Percent: 60, Eng2N2Percent: 60})

		if stepsBefore >= 1 {
			assert.Less(t, math.Floor(stepsBefore), 5.0)
		}
		assert.Less(t, a.lagTimeAccumulator, 200*time.Millisecond)
	}

	diff := realTime - a.TotalSimTimeElapsed()
	if diff < 0 {
		diff = -diff
	}
	assert.Less(t, diff, 200*time.Millisecond)
}

// TestGreenYellowPtuIntegration is scenario S5.
func TestGreenYellowPtuIntegration(t *testing.T) {
	a, err := NewDefaultA320Hydraulic()
	require.NoError(t, err)

	a.Overhead.Edp1Pb = PbOff
	a.Overhead.YellowEpumpPb = PbOn // inverted logic: "on" means stopped
	a.Overhead.PtuPb = PbOff
	a.Logic.Eng1MasterOn = true
	a.Logic.Eng2MasterOn = true

	tick := func() {
		a.Update(UpdateContext{Delta: FixedStep, Eng1N2Percent: 100, Eng2N2Percent: 100})
	}

	for i := 1; i <= 800; i++ {
		switch i {
		case 10:
			a.Overhead.YellowEpumpPb = PbOff // start epump
		case 110:
			a.Overhead.PtuPb = PbAuto // enable PTU
		case 300:
			assert.GreaterOrEqual(t, a.Green.Pressure(), 2400.0)
			assert.GreaterOrEqual(t, a.Yellow.Pressure(), 2400.0)
		case 400:
			a.Overhead.Edp1Pb = PbAuto // start EDP1
		case 600:
			assert.GreaterOrEqual(t, a.Green.Pressure(), 2900.0)
			assert.GreaterOrEqual(t, a.Yellow.Pressure(), 2900.0)
			assert.False(t, a.Ptu.Active())
			a.Overhead.Edp1Pb = PbOff // stop EDP1
		case 800:
			assert.LessOrEqual(t, a.Yellow.Pressure(), 50.0)
			assert.GreaterOrEqual(t, a.Green.Pressure(), 50.0)
			assert.Greater(t, a.Green.ReservoirVolume(), 0.0)
			assert.Greater(t, a.Yellow.ReservoirVolume(), 0.0)
		}
		tick()
	}
}

func TestYellowEpumpCockpitLogicIsInverted(t *testing.T) {
	a, err := NewDefaultA320Hydraulic()
	require.NoError(t, err)

	a.Overhead.YellowEpumpPb = PbOff
	a.applyCockpitLogic()
	assert.True(t, a.YellowEpump.Active())

	a.Overhead.YellowEpumpPb = PbOn
	a.applyCockpitLogic()
	assert.False(t, a.YellowEpump.Active())
}

func TestPtuInhibitedDuringCargoDoorOperation(t *testing.T) {
	a, err := NewDefaultA320Hydraulic()
	require.NoError(t, err)

	a.Overhead.PtuPb = PbAuto
	a.Overhead.YellowEpumpPb = PbOff // pushbutton in the "off" position (pump itself is running, per inverted logic)
	a.Logic.WeightOnWheels = true
	a.Logic.CargoDoorInMotion = true

	a.applyCockpitLogic()
	assert.False(t, a.Ptu.Enabled())
}
