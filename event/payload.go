package event

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/skyport/core"
)

// AutopilotTogglePayload names the craft whose mode flips
// Craft 0 resolves to the piloted craft
type AutopilotTogglePayload struct {
	Craft core.Entity
}

// TargetPickPayload is a world-space ray from the pointer collaborator
// Exclude is skipped by the cast, typically the craft the ray starts in
type TargetPickPayload struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
	MaxDist   float64
	Exclude   core.Entity
}

// TargetNearestDockPayload requests the dock closest to Craft
type TargetNearestDockPayload struct {
	Craft core.Entity
}

// TargetChangedPayload carries the previous and current target holders
type TargetChangedPayload struct {
	Previous core.Entity
	Current  core.Entity
}

// ServicePayload identifies the craft entering or leaving service
type ServicePayload struct {
	Craft core.Entity
	Dock  core.Entity
}

// SupplyFuelPayload grants Amount fuel to Craft
type SupplyFuelPayload struct {
	Craft  core.Entity
	Amount float64
}

// ThrusterPulsePayload describes an applied thrust command
type ThrusterPulsePayload struct {
	Craft core.Entity
	Axis  Axis
	Sign  float64
}

// SystemEnablePayload toggles a system by name
type SystemEnablePayload struct {
	SystemName string
	Enabled    bool
}
