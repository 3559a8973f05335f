package system

import (
	"sync/atomic"

	"github.com/lixenwraith/skyport/engine"
	"github.com/lixenwraith/skyport/parameter"
	"github.com/lixenwraith/skyport/status"
	"github.com/lixenwraith/skyport/vmath"
)

// IndicatorSystem publishes the piloted craft's flight data for presentation
type IndicatorSystem struct {
	world *engine.World

	statFuel    *status.Gauge
	statSpeed   *status.Gauge
	statBearing *status.Gauge
	statLow     *atomic.Bool
}

// NewIndicatorSystem creates a new indicator system
func NewIndicatorSystem(world *engine.World) engine.System {
	reg := world.Resource.Status
	return &IndicatorSystem{
		world:       world,
		statFuel:    reg.Gauge("craft.fuel"),
		statSpeed:   reg.Gauge("craft.speed"),
		statBearing: reg.Gauge("craft.bearing"),
		statLow:     reg.Flag("craft.fuel_low"),
	}
}

func (s *IndicatorSystem) Init() {}

func (s *IndicatorSystem) Name() string {
	return "indicator"
}

func (s *IndicatorSystem) Priority() int {
	return parameter.PriorityIndicator
}

// Update builds and publishes a snapshot, values stay zero for any missing collaborator
func (s *IndicatorSystem) Update() {
	res := s.world.Resource
	snap := engine.Indicators{
		Tick:  res.Time.Tick,
		Craft: res.Pilot.Entity,
	}

	for _, d := range s.world.Components.Dock.Sorted() {
		dc, _ := s.world.Components.Dock.Get(d)
		snap.Docks = append(snap.Docks, engine.DockStatus{Entity: d, Client: dc.Client, Busy: !dc.Free()})
	}

	craft := res.Pilot.Entity
	if cc, ok := s.world.Components.Craft.Get(craft); ok {
		snap.Mode = cc.Mode
		snap.Service = cc.Service
	}
	if fuel, ok := s.world.Components.Fuel.Get(craft); ok {
		snap.Fuel = fuel.Current
		snap.FuelPercent = fuel.Percent()
		snap.FuelLow = fuel.Below(res.Tuning.FuelLowThreshold)
	}

	if phys := res.Physics.Service; phys != nil {
		if tr, ok := phys.Transform(craft); ok {
			snap.Position = tr.Translation
			vel, _ := phys.Velocity(craft)
			snap.Speed = vel.Len()

			if target, ok := res.Target.Get(); ok {
				if ttr, ok := phys.Transform(target); ok {
					toTarget := ttr.Translation.Sub(tr.Translation)
					toTargetXZ := vmath.RejectY(toTarget)
					snap.Target = target
					snap.HasTarget = true
					snap.HorizontalDistance = toTargetXZ.Len()
					snap.VerticalOffset = toTarget[1]
					snap.Bearing = vmath.Bearing(toTargetXZ, vmath.ForwardOf(tr.Rotation))
				}
			}
		}
	}

	s.statFuel.Set(snap.Fuel)
	s.statSpeed.Set(snap.Speed)
	s.statBearing.Set(snap.Bearing)
	s.statLow.Store(snap.FuelLow)
	res.Indicator.Publish(snap)
}
