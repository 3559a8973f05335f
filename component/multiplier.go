package component

import "github.com/lixenwraith/skyport/parameter"

// MultiplierComponent scales control magnitudes into impulses
type MultiplierComponent struct {
	Linear  float64
	Angular float64
}

// DefaultMultiplier returns the reference craft response
func DefaultMultiplier() MultiplierComponent {
	return MultiplierComponent{
		Linear:  parameter.ControlLinear,
		Angular: parameter.ControlAngular,
	}
}
