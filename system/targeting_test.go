package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/input"
	"github.com/lixenwraith/skyport/vmath"
)

func pick(origin, dir mgl64.Vec3) event.GameEvent {
	return event.GameEvent{
		Type:    event.EventTargetPickRequest,
		Payload: &event.TargetPickPayload{Origin: origin, Direction: dir, MaxDist: 1000},
	}
}

func TestPickHitAcquiresTarget(t *testing.T) {
	h := newHarness(t)
	near := h.addBeacon(mgl64.Vec3{0, 0, -100})
	h.addBeacon(mgl64.Vec3{0, 0, -200})
	ts := NewTargetingSystem(h.world)

	ts.HandleEvent(pick(mgl64.Vec3{}, vmath.Forward))

	got, ok := h.world.Resource.Target.Get()
	require.True(t, ok)
	assert.Equal(t, near, got, "first hit along the ray")

	events := h.world.Resource.Event.Queue.Consume()
	require.Len(t, events, 1)
	changed := events[0].Payload.(*event.TargetChangedPayload)
	assert.Zero(t, changed.Previous)
	assert.Equal(t, near, changed.Current)
}

func TestPickMissKeepsTarget(t *testing.T) {
	h := newHarness(t)
	held := h.addBeacon(mgl64.Vec3{0, 0, -100})
	h.world.Resource.Target.Set(held)
	ts := NewTargetingSystem(h.world)

	ts.HandleEvent(pick(mgl64.Vec3{}, vmath.Right))

	got, _ := h.world.Resource.Target.Get()
	assert.Equal(t, held, got)
	assert.Zero(t, h.world.Resource.Event.Queue.Len())
}

func TestPickSameTargetIsQuiet(t *testing.T) {
	h := newHarness(t)
	b := h.addBeacon(mgl64.Vec3{0, 0, -100})
	h.world.Resource.Target.Set(b)
	ts := NewTargetingSystem(h.world)

	ts.HandleEvent(pick(mgl64.Vec3{}, vmath.Forward))
	assert.Zero(t, h.world.Resource.Event.Queue.Len())
}

func TestNearestDockTieLowestID(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 10)
	first := h.addDock(mgl64.Vec3{100, 0, 0})
	h.addDock(mgl64.Vec3{-100, 0, 0})
	h.addDock(mgl64.Vec3{0, 0, 200})
	ts := NewTargetingSystem(h.world)

	ts.HandleEvent(event.GameEvent{
		Type:    event.EventTargetNearestDockRequest,
		Payload: &event.TargetNearestDockPayload{Craft: craft},
	})

	got, _ := h.world.Resource.Target.Get()
	assert.Equal(t, first, got)
}

func TestNearestDockWithoutDocksIsNoop(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 10)
	ts := NewTargetingSystem(h.world)

	ts.HandleEvent(event.GameEvent{
		Type:    event.EventTargetNearestDockRequest,
		Payload: &event.TargetNearestDockPayload{Craft: craft},
	})
	_, ok := h.world.Resource.Target.Get()
	assert.False(t, ok)
}

func TestTargetIsSingleValued(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 10)
	dock := h.addDock(mgl64.Vec3{0, 0, 300})
	beacon := h.addBeacon(mgl64.Vec3{0, 0, -100})
	ts := NewTargetingSystem(h.world)

	ts.HandleEvent(pick(mgl64.Vec3{0, 0, -10}, vmath.Forward))
	ts.HandleEvent(event.GameEvent{
		Type:    event.EventTargetNearestDockRequest,
		Payload: &event.TargetNearestDockPayload{Craft: craft},
	})

	got, _ := h.world.Resource.Target.Get()
	assert.Equal(t, dock, got)

	events := h.world.Resource.Event.Queue.Consume()
	require.Len(t, events, 2)
	second := events[1].Payload.(*event.TargetChangedPayload)
	assert.Equal(t, beacon, second.Previous, "previous holder cleared")
}

func TestNosePickSkipsPilot(t *testing.T) {
	h := newHarness(t)
	h.addPilot(mgl64.Vec3{}, 1000)
	ahead := h.addBeacon(mgl64.Vec3{0, 0, -300})
	src := input.NewState()
	h.world.Resource.Input.Source = src

	src.Press(input.ActionTargetPick)
	h.run(2)

	got, _ := h.world.Resource.Target.Get()
	assert.Equal(t, ahead, got)
}
