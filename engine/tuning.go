package engine

import (
	"time"

	"github.com/lixenwraith/skyport/parameter"
)

// Tuning holds the runtime-overridable simulation constants
// Defaults come from the parameter package; config may replace them before start
type Tuning struct {
	// Fuel
	FuelCapacity     float64
	FuelLowThreshold float64
	FuelCostLinear   float64
	FuelCostYaw      float64

	// Movement
	LinearDampingBaseline float64

	// Autopilot
	AutopilotYawDeadband      float64
	AutopilotYawGain          float64
	AutopilotVerticalSpeedMin float64
	AutopilotVerticalDeadband float64
	AutopilotBrakeSpeedSq     float64
	AutopilotBrakeMagnitude   float64
	AutopilotCruiseDistanceSq float64
	AutopilotCruiseSpeedSq    float64
	AutopilotForwardGain      float64

	// Docking
	DockScanInterval time.Duration
	DockRange        float64
	DockSupplyRate   float64
	DockServiceBrake float64
}

// DefaultTuning returns the reference constants
func DefaultTuning() *Tuning {
	return &Tuning{
		FuelCapacity:     parameter.FuelCapacity,
		FuelLowThreshold: parameter.FuelLowThreshold,
		FuelCostLinear:   parameter.FuelCostLinear,
		FuelCostYaw:      parameter.FuelCostYaw,

		LinearDampingBaseline: parameter.LinearDampingBaseline,

		AutopilotYawDeadband:      parameter.AutopilotYawDeadband,
		AutopilotYawGain:          parameter.AutopilotYawGain,
		AutopilotVerticalSpeedMin: parameter.AutopilotVerticalSpeedMin,
		AutopilotVerticalDeadband: parameter.AutopilotVerticalDeadband,
		AutopilotBrakeSpeedSq:     parameter.AutopilotBrakeSpeedSq,
		AutopilotBrakeMagnitude:   parameter.AutopilotBrakeMagnitude,
		AutopilotCruiseDistanceSq: parameter.AutopilotCruiseDistanceSq,
		AutopilotCruiseSpeedSq:    parameter.AutopilotCruiseSpeedSq,
		AutopilotForwardGain:      parameter.AutopilotForwardGain,

		DockScanInterval: parameter.DockScanInterval,
		DockRange:        parameter.DockRange,
		DockSupplyRate:   parameter.DockSupplyRate,
		DockServiceBrake: parameter.DockServiceBrake,
	}
}
