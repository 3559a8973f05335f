package event

import "sync"

var (
	typeToName   = make(map[EventType]string)
	registryOnce sync.Once
)

// RegisterType maps an EventType to its display name
func RegisterType(name string, et EventType) {
	typeToName[et] = name
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	InitRegistry()
	return typeToName[et]
}

// InitRegistry populates the registry with all simulation events, safe to call repeatedly
func InitRegistry() {
	registryOnce.Do(func() {
		RegisterType("EventAutopilotToggle", EventAutopilotToggle)

		RegisterType("EventTargetPickRequest", EventTargetPickRequest)
		RegisterType("EventTargetNearestDockRequest", EventTargetNearestDockRequest)
		RegisterType("EventTargetChanged", EventTargetChanged)

		RegisterType("EventService", EventService)
		RegisterType("EventSupplyFuel", EventSupplyFuel)
		RegisterType("EventServiceComplete", EventServiceComplete)

		RegisterType("EventThrusterPulse", EventThrusterPulse)

		RegisterType("EventSystemEnable", EventSystemEnable)
	})
}
