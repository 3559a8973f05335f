package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/physics"
	"github.com/lixenwraith/skyport/vmath"
)

// DockingSystem coordinates the dock rendezvous protocol
// Stages run in order every tick: scan (on its interval), service, release
type DockingSystem struct {
	world *engine.World

	sinceScan time.Duration
	enabled   bool

	statBusy *atomic.Int64
}

// NewDockingSystem creates a new docking system
func NewDockingSystem(world *engine.World) engine.System {
	s := &DockingSystem{
		world:    world,
		statBusy: world.Resource.Status.Counter("docking.busy"),
	}
	s.Init()
	return s
}

// Init resets session state for new game
func (s *DockingSystem) Init() {
	s.sinceScan = 0
	s.enabled = true
}

// Name returns system's name
func (s *DockingSystem) Name() string {
	return "docking"
}

// Priority returns the system's priority
func (s *DockingSystem) Priority() int {
	return parameter.PriorityDocking
}

// EventTypes returns the event types DockingSystem handles
func (s *DockingSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventSystemEnable,
	}
}

// HandleEvent processes enable toggles
func (s *DockingSystem) HandleEvent(ev event.GameEvent) {
	applyEnable(ev, s.Name(), &s.enabled)
}

// Update runs the three docking stages
func (s *DockingSystem) Update() {
	if !s.enabled {
		return
	}

	res := s.world.Resource
	s.sinceScan += res.Time.DeltaTime
	if s.sinceScan >= res.Tuning.DockScanInterval {
		s.sinceScan -= res.Tuning.DockScanInterval
		if phys := res.Physics.Service; phys != nil {
			s.scan(phys)
		}
	}

	s.service()
	s.release()
}

// scan links each waiting craft to the nearest free dock in range
// Claim-then-commit: a dock claimed in this pass is unavailable to later craft
// A craft already linked but still waiting gets its Service event resent
func (s *DockingSystem) scan(phys physics.Service) {
	res := s.world.Resource
	docks := s.world.Components.Dock

	type freeDock struct {
		entity core.Entity
		pos    mgl64.Vec3
	}

	linked := make(map[core.Entity]core.Entity)
	var free []freeDock
	for _, d := range docks.Sorted() {
		dc, _ := docks.Get(d)
		if !dc.Free() {
			linked[dc.Client] = d
			continue
		}
		if tr, ok := phys.Transform(d); ok {
			free = append(free, freeDock{entity: d, pos: tr.Translation})
		}
	}

	rangeSq := res.Tuning.DockRange * res.Tuning.DockRange
	for _, craft := range s.world.Components.Craft.Sorted() {
		cc, _ := s.world.Components.Craft.Get(craft)
		if !cc.NeedsService() {
			continue
		}
		if dock, ok := linked[craft]; ok {
			res.Event.Queue.Emit(event.EventService, &event.ServicePayload{Craft: craft, Dock: dock}, res.Time.Tick)
			res.Log.Warn("service resent to linked craft",
				zap.Uint64("craft", uint64(craft)),
				zap.Uint64("dock", uint64(dock)),
			)
			continue
		}
		if len(free) == 0 {
			continue
		}
		tr, ok := phys.Transform(craft)
		if !ok {
			continue
		}

		bestIdx := -1
		bestDist := math.Inf(1)
		for i, fd := range free {
			if d := vmath.DistanceSq(tr.Translation, fd.pos); d < rangeSq && d < bestDist {
				bestIdx, bestDist = i, d
			}
		}
		if bestIdx < 0 {
			continue
		}

		dock := free[bestIdx].entity
		free = append(free[:bestIdx], free[bestIdx+1:]...)

		docks.Set(dock, dockWithClient(craft))
		res.Telemetry.DockClaimed()
		res.Event.Queue.Emit(event.EventService, &event.ServicePayload{Craft: craft, Dock: dock}, res.Time.Tick)
		res.Log.Info("dock claimed",
			zap.Uint64("craft", uint64(craft)),
			zap.Uint64("dock", uint64(dock)),
			zap.Float64("distance", math.Sqrt(bestDist)),
		)
	}
}

// service supplies fuel to every linked craft that is under service
func (s *DockingSystem) service() {
	res := s.world.Resource
	docks := s.world.Components.Dock

	busy := int64(0)
	for _, d := range docks.Sorted() {
		dc, _ := docks.Get(d)
		if dc.Free() {
			continue
		}
		busy++
		cc, ok := s.world.Components.Craft.Get(dc.Client)
		if !ok || !cc.UnderService() {
			continue
		}
		res.Event.Queue.Emit(event.EventSupplyFuel, &event.SupplyFuelPayload{
			Craft:  dc.Client,
			Amount: res.Tuning.DockSupplyRate,
		}, res.Time.Tick)
	}
	s.statBusy.Store(busy)
}

// release unlinks docks whose client left service this tick
func (s *DockingSystem) release() {
	released := s.world.Resource.Service.DrainReleased()
	if len(released) == 0 {
		return
	}

	gone := make(map[core.Entity]bool, len(released))
	for _, c := range released {
		gone[c] = true
	}

	docks := s.world.Components.Dock
	for _, d := range docks.Sorted() {
		dc, _ := docks.Get(d)
		if dc.Free() || !gone[dc.Client] {
			continue
		}
		s.world.Resource.Log.Debug("dock released",
			zap.Uint64("dock", uint64(d)),
			zap.Uint64("craft", uint64(dc.Client)),
		)
		docks.Set(d, dockWithClient(0))
	}
}

func dockWithClient(c core.Entity) component.DockComponent {
	return component.DockComponent{Client: c}
}
