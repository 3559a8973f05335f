package component

// FuelComponent is a bounded scalar resource, always within [0, Capacity]
type FuelComponent struct {
	Current  float64
	Capacity float64
}

// NewFuel returns a full tank of the given capacity
func NewFuel(capacity float64) FuelComponent {
	if capacity < 0 {
		capacity = 0
	}
	return FuelComponent{Current: capacity, Capacity: capacity}
}

// Gain adds up to amount without exceeding capacity
// Returns true iff the tank is full afterwards; negative amounts add nothing
func (f *FuelComponent) Gain(amount float64) bool {
	if amount > 0 {
		if room := f.Capacity - f.Current; amount >= room {
			f.Current = f.Capacity
		} else {
			f.Current += amount
		}
	}
	return f.Current >= f.Capacity
}

// Loss removes up to amount without going below zero
// Returns true iff the tank is empty afterwards; negative amounts remove nothing
func (f *FuelComponent) Loss(amount float64) bool {
	if amount > 0 {
		if amount >= f.Current {
			f.Current = 0
		} else {
			f.Current -= amount
		}
	}
	return f.Current <= 0
}

// Percent returns the fill fraction in [0, 1]
func (f FuelComponent) Percent() float64 {
	if f.Capacity <= 0 {
		return 0
	}
	return f.Current / f.Capacity
}

// Below reports whether the fill fraction is strictly under threshold
// Callers pass the live tuning value, the component carries no threshold of its own
func (f FuelComponent) Below(threshold float64) bool {
	return f.Percent() < threshold
}

// Empty reports whether no fuel remains
func (f FuelComponent) Empty() bool {
	return f.Current <= 0
}
