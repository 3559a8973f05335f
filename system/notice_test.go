package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/event"
)

func TestNoticeOnNearestDockRetarget(t *testing.T) {
	h := newHarness(t)
	craft := h.addPilot(mgl64.Vec3{}, 100)
	home := h.addBeacon(mgl64.Vec3{0, 0, -500})
	dock := h.addDock(mgl64.Vec3{200, 0, 0})
	h.world.Resource.Target.Set(home)

	// Flag on tick 1, retarget on tick 2, notice on tick 3
	h.run(3)
	got, _ := h.world.Resource.Target.Get()
	assert.Equal(t, dock, got)

	snap := h.world.Resource.Indicator.Snapshot()
	assert.Contains(t, snap.Notice, "Target: dock")
	assert.Equal(t, int64(2), snap.NoticeTick)
	assert.Equal(t, int64(1), h.world.Resource.Status.Counter("target.changes").Load())
	assert.Equal(t, component.ServiceNeeded, h.craft(craft).Service)
}

func TestNoticeOnlyForPilotService(t *testing.T) {
	h := newHarness(t)
	pilot := h.addPilot(mgl64.Vec3{}, 1000)
	other := h.addCraft(mgl64.Vec3{50, 0, 0}, 1000)
	notices := NewNoticeSystem(h.world)

	notices.HandleEvent(event.GameEvent{Type: event.EventServiceComplete, Payload: &event.ServicePayload{Craft: other}, Tick: 4})
	assert.Empty(t, h.world.Resource.Indicator.Snapshot().Notice)

	notices.HandleEvent(event.GameEvent{Type: event.EventServiceComplete, Payload: &event.ServicePayload{Craft: pilot}, Tick: 9})
	snap := h.world.Resource.Indicator.Snapshot()
	assert.Contains(t, snap.Notice, "Refuelled")
	assert.Equal(t, int64(9), snap.NoticeTick)
	assert.Equal(t, int64(2), h.world.Resource.Status.Counter("service.completed").Load())

	// Publishing a fresh snapshot keeps the notice
	h.run(1)
	assert.Contains(t, h.world.Resource.Indicator.Snapshot().Notice, "Refuelled")
}

func TestNoticeTargetNamesKind(t *testing.T) {
	h := newHarness(t)
	beacon := h.addBeacon(mgl64.Vec3{})
	dock := h.addDock(mgl64.Vec3{10, 0, 0})

	assert.Equal(t, "Target: beacon #1", targetNotice(h.world, &event.TargetChangedPayload{Current: beacon}))
	assert.Equal(t, "Target: dock #2 (was #1)", targetNotice(h.world, &event.TargetChangedPayload{Previous: beacon, Current: dock}))
}
