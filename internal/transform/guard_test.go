package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_EnterDetectsCycle(t *testing.T) {
	g := NewGuard()

	releaseA, err := g.Enter("x_a_component")
	require.NoError(t, err)
	defer releaseA()

	releaseB, err := g.Enter("x_b_component")
	require.NoError(t, err)
	defer releaseB()

	_, err = g.Enter("x_a_component")
	var cycle *InfiniteRecursionError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, "x_a_component", cycle.DispatchKey)
	assert.Equal(t, []string{"x_a_component", "x_b_component", "x_a_component"}, cycle.Chain,
		"chain runs first-invoked to about-to-be-invoked")
}

func TestGuard_ReleaseAllowsReentry(t *testing.T) {
	g := NewGuard()

	release, err := g.Enter("x_a_component")
	require.NoError(t, err)
	release()

	release, err = g.Enter("x_a_component")
	require.NoError(t, err)
	release()

	assert.Equal(t, 0, g.Depth())
}

func TestGuard_DescendIsNotACycle(t *testing.T) {
	g := NewGuard()

	// Nested markup repeats tags all the time; only renderer re-entry cycles.
	releaseOuter := g.Descend("x-a")
	defer releaseOuter()
	releaseInner := g.Descend("x-a")
	defer releaseInner()

	release, err := g.Enter("x_a_component")
	require.NoError(t, err)
	release()
}

func TestGuard_ChainFiltersElementFrames(t *testing.T) {
	g := NewGuard()

	releaseTag := g.Descend("div")
	defer releaseTag()
	releaseComp, err := g.Enter("x_a_component")
	require.NoError(t, err)
	defer releaseComp()
	releaseInnerTag := g.Descend("span")
	defer releaseInnerTag()

	_, err = g.Enter("x_a_component")
	var cycle *InfiniteRecursionError
	require.ErrorAs(t, err, &cycle)
	assert.Equal(t, []string{"x_a_component", "x_a_component"}, cycle.Chain,
		"element frames stay out of the reported chain")
	assert.Equal(t, 3, g.Depth())
}
