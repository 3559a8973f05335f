package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventNone is the zero value and never emitted
	EventNone EventType = iota

	// === Control Event ===

	// EventAutopilotToggle flips the piloted craft between manual and autopilot
	// Trigger: InputSystem on the toggle key, headless runner on start
	// Consumer: AutopilotSystem | Payload: *AutopilotTogglePayload
	EventAutopilotToggle

	// === Target Event ===

	// EventTargetPickRequest asks for a ray cast pick of a new target
	// Trigger: InputSystem on the pick key (nose ray)
	// Consumer: TargetingSystem | Payload: *TargetPickPayload
	EventTargetPickRequest

	// EventTargetNearestDockRequest asks for the nearest dock to become the target
	// Trigger: FuelSystem when the piloted craft starts needing service
	// Consumer: TargetingSystem | Payload: *TargetNearestDockPayload
	EventTargetNearestDockRequest

	// EventTargetChanged signals that the single target moved to a new entity
	// Trigger: TargetingSystem after a pick or nearest-dock acquisition
	// Consumer: NoticeSystem | Payload: *TargetChangedPayload
	EventTargetChanged

	// === Docking Event ===

	// EventService signals that a dock accepted a craft
	// Trigger: DockingSystem scan after linking a dock
	// Consumer: ServiceSystem | Payload: *ServicePayload
	EventService

	// EventSupplyFuel grants fuel to a craft under service
	// Trigger: DockingSystem service stage, once per tick per linked dock
	// Consumer: FuelSystem | Payload: *SupplyFuelPayload
	EventSupplyFuel

	// EventServiceComplete signals that a craft left service with a full tank
	// Trigger: FuelSystem when supply fills the tank
	// Consumer: NoticeSystem | Payload: *ServicePayload
	EventServiceComplete

	// === Feedback Event ===

	// EventThrusterPulse notifies presentation of an accepted thrust command
	// Trigger: MovementSystem per applied forward, vertical or yaw command
	// Consumer: AudioSystem | Payload: *ThrusterPulsePayload
	EventThrusterPulse

	// === Meta Event ===

	// EventSystemEnable enables or disables a system by name
	// Trigger: app assembly for each system listed in config disabled
	// Consumer: any system | Payload: *SystemEnablePayload
	EventSystemEnable
)

// GameEvent is a single routed event
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "EventUnknown"
}
