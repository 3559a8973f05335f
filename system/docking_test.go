package system

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
)

// scanOnce runs a docking update with a full scan interval elapsed
func scanOnce(h *harness, ds *DockingSystem) {
	h.step(h.world.Resource.Tuning.DockScanInterval)
	ds.Update()
}

func TestDockScanClaimsAndBegins(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 150)
	h.setService(craft, component.ServiceNeeded)
	dock := h.addDock(mgl64.Vec3{40, 0, 0})

	// 60 steps of 1/60s fall just short of the scan interval
	h.run(59)
	assert.Zero(t, h.client(dock))

	n := h.runUntil(func() bool { return h.client(dock) == craft }, 5)
	assert.Equal(t, 2, n, "scan fires on tick 61")
	assert.Equal(t, component.ServiceNeeded, h.craft(craft).Service, "service event pending")

	h.run(1)
	assert.Equal(t, component.ServiceActive, h.craft(craft).Service)
	assert.Equal(t, parameter.DockServiceBrake, h.damping(craft), "service brake applied same tick")
	assert.Equal(t, int64(1), h.world.Resource.Status.Counter("docking.busy").Load())
}

func TestDockScanRangeIsExclusive(t *testing.T) {
	h := newHarness(t)
	ds := NewDockingSystem(h.world).(*DockingSystem)
	at := h.addCraft(mgl64.Vec3{}, 10)
	h.setService(at, component.ServiceNeeded)
	dock := h.addDock(mgl64.Vec3{0, 0, parameter.DockRange})

	scanOnce(h, ds)
	assert.Zero(t, h.client(dock), "exactly at range does not dock")

	h.space.SetTranslation(at, mgl64.Vec3{0, 0, 0.5})
	scanOnce(h, ds)
	assert.Equal(t, at, h.client(dock))
}

func TestDockScanClaimThenCommit(t *testing.T) {
	h := newHarness(t)
	ds := NewDockingSystem(h.world).(*DockingSystem)
	first := h.addCraft(mgl64.Vec3{0, 0, 0}, 10)
	second := h.addCraft(mgl64.Vec3{5, 0, 0}, 10)
	h.setService(first, component.ServiceNeeded)
	h.setService(second, component.ServiceNeeded)
	dock := h.addDock(mgl64.Vec3{10, 0, 0})

	scanOnce(h, ds)
	assert.Equal(t, first, h.client(dock), "lowest craft id claims first")

	var serviced []core.Entity
	for _, ev := range h.world.Resource.Event.Queue.Consume() {
		if ev.Type == event.EventService {
			serviced = append(serviced, ev.Payload.(*event.ServicePayload).Craft)
		}
	}
	assert.Equal(t, []core.Entity{first}, serviced, "one craft per dock per scan")

	// A linked craft never claims a second dock
	other := h.addDock(mgl64.Vec3{0, 0, 10})
	scanOnce(h, ds)
	assert.Equal(t, second, h.client(other))
	assert.Equal(t, first, h.client(dock))
}

func TestDockScanResendsServiceToLinkedCraft(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 10)
	dock := h.addDock(mgl64.Vec3{10, 0, 0})
	h.setService(craft, component.ServiceNeeded)
	// Linked without a Service event in flight, as after a lost event
	h.world.Components.Dock.Set(dock, component.DockComponent{Client: craft})

	n := h.runUntil(func() bool { return h.craft(craft).UnderService() }, 120)
	assert.Equal(t, 62, n, "next scan resends, handler admits one tick later")
	assert.Equal(t, craft, h.client(dock))
}

func TestDockScanServicesCrowdWithoutLoss(t *testing.T) {
	h := newHarness(t)
	const count = 300

	crafts := make([]core.Entity, count)
	docks := make([]core.Entity, count)
	for i := 0; i < count; i++ {
		x := float64(i) * 200
		crafts[i] = h.addCraft(mgl64.Vec3{x, 0, 0}, 10)
		h.setService(crafts[i], component.ServiceNeeded)
		docks[i] = h.addDock(mgl64.Vec3{x, 0, 10})
	}

	h.run(63)
	for i := 0; i < count; i++ {
		require.True(t, h.craft(crafts[i]).UnderService(), "craft %d not admitted", i)
		require.Equal(t, crafts[i], h.client(docks[i]))
	}
	assert.Zero(t, h.world.Resource.Event.Queue.Dropped())
	assert.Zero(t, h.world.Resource.Control.Queue.Dropped())
	assert.Equal(t, int64(count), h.world.Resource.Status.Counter("docking.busy").Load())
}

func TestDockScanPicksNearestFreeDock(t *testing.T) {
	h := newHarness(t)
	ds := NewDockingSystem(h.world).(*DockingSystem)
	a := h.addCraft(mgl64.Vec3{}, 10)
	b := h.addCraft(mgl64.Vec3{}, 10)
	h.setService(a, component.ServiceNeeded)
	h.setService(b, component.ServiceNeeded)
	far := h.addDock(mgl64.Vec3{0, 0, 30})
	near := h.addDock(mgl64.Vec3{0, 0, 10})

	scanOnce(h, ds)
	assert.Equal(t, a, h.client(near))
	assert.Equal(t, b, h.client(far), "second craft takes the remaining dock")
}

func TestDockScanNoDockInRangeWaits(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 10)
	h.setService(craft, component.ServiceNeeded)
	dock := h.addDock(mgl64.Vec3{500, 0, 0})

	h.run(60 * 5)
	assert.Equal(t, component.ServiceNeeded, h.craft(craft).Service)
	assert.Zero(t, h.client(dock))
}

func TestServiceCycleReleasesDockSameTick(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 0)
	dock := h.addDock(mgl64.Vec3{10, 0, 0})
	h.setService(craft, component.ServiceActive)
	h.world.Components.Dock.Set(dock, component.DockComponent{Client: craft})

	n := h.runUntil(func() bool { return !h.craft(craft).UnderService() }, 2000)

	// Supply emitted on tick k lands on tick k+1
	assert.Equal(t, 1001, n)
	assert.Equal(t, parameter.FuelCapacity, h.fuel(craft))
	assert.Zero(t, h.client(dock), "link cleared in the completing tick")
	assert.Equal(t, component.ServiceNormal, h.craft(craft).Service)

	h.run(1)
	assert.Equal(t, int64(0), h.world.Resource.Status.Counter("docking.busy").Load())
}

func TestStaleServiceEventReleasesDock(t *testing.T) {
	h := newHarness(t)
	craft := h.addCraft(mgl64.Vec3{}, 900)
	dock := h.addDock(mgl64.Vec3{10, 0, 0})
	h.world.Components.Dock.Set(dock, component.DockComponent{Client: craft})

	h.world.Resource.Event.Queue.Emit(event.EventService, &event.ServicePayload{Craft: craft, Dock: dock}, 0)
	h.run(1)

	assert.Equal(t, component.ServiceNormal, h.craft(craft).Service)
	assert.Zero(t, h.client(dock))
}

func TestDockingDisabledSkipsStages(t *testing.T) {
	h := newHarness(t)
	ds := NewDockingSystem(h.world).(*DockingSystem)
	ds.HandleEvent(event.GameEvent{
		Type:    event.EventSystemEnable,
		Payload: &event.SystemEnablePayload{SystemName: "docking", Enabled: false},
	})
	craft := h.addCraft(mgl64.Vec3{}, 10)
	h.setService(craft, component.ServiceNeeded)
	dock := h.addDock(mgl64.Vec3{1, 0, 0})

	h.step(10 * time.Second)
	ds.Update()
	assert.Zero(t, h.client(dock))
	require.Zero(t, h.world.Resource.Event.Queue.Len())
}
