package hydraulic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoopAt(t *testing.T, color LoopColor, left, right bool, pressure float64) *HydLoop {
	t.Helper()
	loop, err := NewHydLoop(color, left, right, 10.0, 10.0, 8.0, 3.3, mustFluid(t))
	require.NoError(t, err)
	loop.loopPressure = pressure
	loop.currentMaxFlow = 10.0
	return loop
}

func TestPtuIdleWithinDeadband(t *testing.T) {
	ptu := NewPtu()
	ptu.Enabling(true)

	left := newTestLoopAt(t, Green, true, false, 2000)
	right := newTestLoopAt(t, Yellow, false, true, 1900)

	ptu.Update(left, right)
	assert.False(t, ptu.Active())
	assert.Zero(t, ptu.FlowToLeft())
	assert.Zero(t, ptu.FlowToRight())
}

func TestPtuActivatesLeftToRight(t *testing.T) {
	ptu := NewPtu()
	ptu.Enabling(true)

	left := newTestLoopAt(t, Green, true, false, 2900)
	right := newTestLoopAt(t, Yellow, false, true, 2000)

	ptu.Update(left, right)
	assert.True(t, ptu.ActiveLeft())
	assert.False(t, ptu.ActiveRight())
	assert.LessOrEqual(t, ptu.FlowToLeft()*ptu.FlowToRight(), 0.0)
}

func TestPtuActivatesRightToLeft(t *testing.T) {
	ptu := NewPtu()
	ptu.Enabling(true)

	left := newTestLoopAt(t, Green, true, false, 1000)
	right := newTestLoopAt(t, Yellow, false, true, 2500)

	ptu.Update(left, right)
	assert.False(t, ptu.ActiveLeft())
	assert.True(t, ptu.ActiveRight())
	assert.LessOrEqual(t, ptu.FlowToLeft()*ptu.FlowToRight(), 0.0)
}

func TestPtuMutualExclusionAndDeactivation(t *testing.T) {
	ptu := NewPtu()
	ptu.Enabling(true)

	left := newTestLoopAt(t, Green, true, false, 2900)
	right := newTestLoopAt(t, Yellow, false, true, 2000)
	ptu.Update(left, right)
	require.True(t, ptu.ActiveLeft())
	assert.False(t, ptu.ActiveLeft() && ptu.ActiveRight())

	// Drive the destination loop over the deactivation threshold.
	right.loopPressure = 3100
	ptu.Update(left, right)
	assert.False(t, ptu.Active())
	assert.Zero(t, ptu.FlowToLeft())
	assert.Zero(t, ptu.FlowToRight())
}

func TestPtuDisablingClearsResidualFlows(t *testing.T) {
	ptu := NewPtu()
	ptu.Enabling(true)

	left := newTestLoopAt(t, Green, true, false, 2900)
	right := newTestLoopAt(t, Yellow, false, true, 2000)
	ptu.Update(left, right)
	require.True(t, ptu.Active())

	ptu.Enabling(false)
	assert.False(t, ptu.Active())
	assert.Zero(t, ptu.FlowToLeft())
	assert.Zero(t, ptu.FlowToRight())
}
