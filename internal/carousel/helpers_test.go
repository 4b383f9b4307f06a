package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var epoch = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// rig is a mounted engine over a 100px viewport where every item is 100px wide
type rig struct {
	sched   *VirtualScheduler
	surface *Surface
	engine  *Engine
}

func newRig(t *testing.T, opts Options, items int) *rig {
	t.Helper()
	sched := NewVirtualScheduler(epoch)
	surface := NewSurface()
	surface.Layout(float64(items)*100, 100)

	eng, err := NewEngine(surface, sched, opts, zap.NewNop())
	require.NoError(t, err)
	eng.SetItemCount(items)
	eng.Mount()
	t.Cleanup(eng.Close)

	return &rig{sched: sched, surface: surface, engine: eng}
}

// settle runs long enough for a smooth scroll and its recomputation to finish
func (r *rig) settle() {
	r.sched.Advance(ScrollDuration + 5*DefaultFrameInterval)
}

func (r *rig) state() State {
	return r.engine.Coordinator().State()
}

func (r *rig) commands() int {
	return r.engine.Coordinator().Stats().ScrollCommands
}

func (r *rig) pointer(kind PointerKind, x, y float64, at time.Duration) bool {
	return r.surface.DispatchPointer(&PointerEvent{Kind: kind, X: x, Y: y, Time: epoch.Add(at)})
}
