package engine

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/component"
	"github.com/lixenwraith/skyport/core"
	"github.com/lixenwraith/skyport/event"
	"github.com/lixenwraith/skyport/input"
	"github.com/lixenwraith/skyport/physics"
	"github.com/lixenwraith/skyport/status"
	"github.com/lixenwraith/skyport/telemetry"
)

// Resource holds singleton simulation resources, accessed via World.Resource
type Resource struct {
	// World Resource
	Time    *TimeResource
	Event   *EventQueueResource
	Control *ControlResource
	Target  *TargetResource
	Pilot   *PilotResource
	Service *ServiceResource
	Tuning  *Tuning

	// Presentation
	Indicator *IndicatorResource

	// Telemetry
	Status    *status.Registry
	Telemetry *telemetry.Counters
	Log       *zap.Logger

	// Bridged collaborators
	Physics *PhysicsResource
	Input   *InputResource
	Audio   *AudioResource
}

func newResource() *Resource {
	return &Resource{
		Time:      &TimeResource{},
		Event:     &EventQueueResource{Queue: event.NewEventQueue()},
		Control:   &ControlResource{Queue: event.NewControlQueue()},
		Target:    &TargetResource{},
		Pilot:     &PilotResource{},
		Service:   &ServiceResource{},
		Tuning:    DefaultTuning(),
		Indicator: &IndicatorResource{},
		Status:    status.NewRegistry(),
		Log:       zap.NewNop(),
		Physics:   &PhysicsResource{},
		Input:     &InputResource{},
		Audio:     &AudioResource{},
	}
}

// === World Resources ===

// TimeResource wraps tick timing for systems
// Updated by the Scheduler at the start of a tick under world lock
type TimeResource struct {
	// DeltaTime is the fixed step of the current tick
	DeltaTime time.Duration

	// Elapsed is the simulated time since start
	Elapsed time.Duration

	// Tick is the current tick number, starting at 1
	Tick int64
}

// Update modifies TimeResource fields in-place
func (tr *TimeResource) Update(delta time.Duration, tick int64) {
	tr.DeltaTime = delta
	tr.Elapsed += delta
	tr.Tick = tick
}

// Seconds returns the tick delta in seconds
func (tr *TimeResource) Seconds() float64 {
	return tr.DeltaTime.Seconds()
}

// EventQueueResource wraps the cross-system event queue
type EventQueueResource struct {
	Queue *event.EventQueue
}

// ControlResource wraps the same-tick control command queue
type ControlResource struct {
	Queue *event.ControlQueue
}

// TargetResource is the single world-level navigation target
// Acquisition replaces the previous holder atomically, so at most one entity is ever the target
type TargetResource struct {
	entity core.Entity
}

// Get returns the current target, false when none is set
func (t *TargetResource) Get() (core.Entity, bool) {
	return t.entity, t.entity != 0
}

// Set clears the previous holder and makes e the target, returning the previous holder
func (t *TargetResource) Set(e core.Entity) core.Entity {
	prev := t.entity
	t.entity = e
	return prev
}

// Clear removes the target
func (t *TargetResource) Clear() {
	t.entity = 0
}

// PilotResource names the single actively piloted craft
type PilotResource struct {
	Entity core.Entity
}

// ServiceResource records crafts leaving service during the current tick
// The docking release stage drains it to unlink their docks
type ServiceResource struct {
	released []core.Entity
}

// Release records that craft left service or its service link went stale
func (s *ServiceResource) Release(craft core.Entity) {
	s.released = append(s.released, craft)
}

// DrainReleased returns and clears recorded releases
func (s *ServiceResource) DrainReleased() []core.Entity {
	if len(s.released) == 0 {
		return nil
	}
	out := s.released
	s.released = nil
	return out
}

// PhysicsResource bridges the rigid-body collaborator
type PhysicsResource struct {
	Service physics.Service
}

// InputResource bridges the key action source, nil when headless
type InputResource struct {
	Source *input.State
}

// PulseSink receives thruster feedback for audio or visual presentation
type PulseSink interface {
	Pulse(axis event.Axis, sign float64)
}

// AudioResource bridges the thruster sink, nil Sink when muted
type AudioResource struct {
	Sink PulseSink
}

// === Presentation ===

// DockStatus is the presentation state of a single dock
type DockStatus struct {
	Entity core.Entity
	Client core.Entity
	Busy   bool
}

// Indicators is a snapshot of the piloted craft's flight data
type Indicators struct {
	Tick int64

	Craft     core.Entity
	Target    core.Entity
	HasTarget bool

	Speed              float64
	HorizontalDistance float64
	VerticalOffset     float64
	Bearing            float64 // Radians, positive when the target is to the right
	Position           [3]float64

	Fuel        float64
	FuelPercent float64
	FuelLow     bool

	Mode    component.ControlMode
	Service component.ServiceState

	Docks []DockStatus

	// Latest pilot notice and the tick it was raised on
	Notice     string
	NoticeTick int64
}

// IndicatorResource publishes snapshots from the tick loop to the HUD goroutine
// Notices survive Publish until replaced
type IndicatorResource struct {
	mu         sync.RWMutex
	snapshot   Indicators
	notice     string
	noticeTick int64
}

// Notify sets the pilot notice shown alongside later snapshots
func (r *IndicatorResource) Notify(text string, tick int64) {
	r.mu.Lock()
	r.notice = text
	r.noticeTick = tick
	r.mu.Unlock()
}

// Publish replaces the current snapshot
func (r *IndicatorResource) Publish(s Indicators) {
	r.mu.Lock()
	r.snapshot = s
	r.mu.Unlock()
}

// Snapshot returns a copy of the latest snapshot
func (r *IndicatorResource) Snapshot() Indicators {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s := r.snapshot
	s.Docks = append([]DockStatus(nil), r.snapshot.Docks...)
	s.Notice = r.notice
	s.NoticeTick = r.noticeTick
	return s
}
