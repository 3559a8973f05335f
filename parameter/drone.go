package parameter

// Fuel
const (
	// FuelCapacity is the tank size of every craft
	FuelCapacity = 1000.0

	// FuelLowThreshold is the fraction of capacity below which a craft requests service
	FuelLowThreshold = 0.2

	// FuelCostLinear is burned per unit magnitude of forward or vertical thrust
	FuelCostLinear = 0.1

	// FuelCostYaw is burned per unit magnitude of yaw
	FuelCostYaw = 0.05
)

// Control Response
const (
	// ControlLinear scales linear impulses
	ControlLinear = 100.0

	// ControlAngular scales torque impulses
	ControlAngular = 10.0

	// LinearDampingBaseline is restored whenever a command batch has no brake
	LinearDampingBaseline = 0.01

	// AngularDamping is fixed on spawn
	AngularDamping = 5.0
)
