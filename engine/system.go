package engine

import "github.com/lixenwraith/skyport/event"

// System is a unit of per-tick simulation logic
type System interface {
	// Init resets session state
	Init()

	// Name identifies the system for enable toggles and logs
	Name() string

	// Priority orders execution, lower runs first
	Priority() int

	// Update runs once per tick under the world update lock
	Update()
}

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems update
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
