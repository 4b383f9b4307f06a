package carousel

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drag starts at x=100 and locks horizontally at endX
func drag(t *testing.T, endX float64) Gesture {
	t.Helper()
	g := Gesture{}.Begin(100, 50, epoch)
	require.Equal(t, GestureSensing, g.Phase)

	g, suppress := g.Move(endX, 51)
	require.True(t, suppress)
	require.Equal(t, GestureDragging, g.Phase)
	return g
}

func TestSwipeCommitsAboveThreshold(t *testing.T) {
	g, swipe := drag(t, 40).End(40, epoch.Add(200*time.Millisecond), 50)

	assert.Equal(t, GestureIdle, g.Phase)
	assert.True(t, swipe.Commit)
	assert.Equal(t, DirectionRight, swipe.Direction)
	assert.InDelta(t, 0.3, swipe.Velocity, 1e-9)
	assert.Equal(t, 50.0, swipe.Threshold)
}

func TestSwipeBelowThresholdDoesNotCommit(t *testing.T) {
	g, swipe := drag(t, 60).End(60, epoch.Add(200*time.Millisecond), 50)

	assert.Equal(t, GestureIdle, g.Phase)
	assert.False(t, swipe.Commit)
	assert.Equal(t, 40.0, swipe.Distance)
}

func TestFastFlickUsesReducedThreshold(t *testing.T) {
	_, swipe := drag(t, 65).End(65, epoch.Add(50*time.Millisecond), 50)

	assert.InDelta(t, 0.7, swipe.Velocity, 1e-9)
	assert.InDelta(t, 30.0, swipe.Threshold, 1e-9)
	assert.True(t, swipe.Commit)
	assert.Equal(t, DirectionRight, swipe.Direction)
}

func TestSwipeTowardsRightScrollsLeft(t *testing.T) {
	_, swipe := drag(t, 170).End(170, epoch.Add(300*time.Millisecond), 50)

	assert.True(t, swipe.Commit)
	assert.Equal(t, DirectionLeft, swipe.Direction)
	assert.Equal(t, -70.0, swipe.Distance)
}

func TestZeroDurationDragCountsAsFlick(t *testing.T) {
	_, swipe := drag(t, 65).End(65, epoch, 50)

	assert.True(t, math.IsInf(swipe.Velocity, 1))
	assert.True(t, swipe.Commit)
}

func TestAxisLockIsSticky(t *testing.T) {
	g := drag(t, 115)

	moves := [][2]float64{{115, 300}, {100, 50}, {101, 49}, {100, -400}}
	for _, m := range moves {
		var suppress bool
		g, suppress = g.Move(m[0], m[1])
		assert.Equal(t, GestureDragging, g.Phase)
		assert.True(t, suppress)
	}
}

func TestSmallMovesKeepSensing(t *testing.T) {
	g := Gesture{}.Begin(100, 50, epoch)

	g, suppress := g.Move(108, 52)
	assert.Equal(t, GestureSensing, g.Phase)
	assert.False(t, suppress)

	// equal travel on both axes is not horizontal intent
	g, suppress = g.Move(120, 70)
	assert.Equal(t, GestureSensing, g.Phase)
	assert.False(t, suppress)
}

func TestVerticalIntentIsIgnored(t *testing.T) {
	g := Gesture{}.Begin(100, 50, epoch)

	g, suppress := g.Move(103, 80)
	assert.Equal(t, GestureIgnoring, g.Phase)
	assert.False(t, suppress)

	g, suppress = g.Move(20, 80)
	assert.Equal(t, GestureIgnoring, g.Phase)
	assert.False(t, suppress)

	g, swipe := g.End(20, epoch.Add(100*time.Millisecond), 50)
	assert.Equal(t, GestureIdle, g.Phase)
	assert.False(t, swipe.Commit)
}

func TestTapDoesNotCommit(t *testing.T) {
	g := Gesture{}.Begin(100, 50, epoch)
	g, swipe := g.End(30, epoch.Add(80*time.Millisecond), 50)

	assert.Equal(t, Gesture{}, g)
	assert.False(t, swipe.Commit)
}

func TestMoveWithoutSessionIsIgnored(t *testing.T) {
	g, suppress := Gesture{}.Move(400, 0)
	assert.Equal(t, GestureIdle, g.Phase)
	assert.False(t, suppress)
}
