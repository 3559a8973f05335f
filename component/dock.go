package component

import "github.com/lixenwraith/skyport/core"

// DockComponent marks a stationary refuelling station
// Client is the craft currently linked for service, 0 when free
type DockComponent struct {
	Client core.Entity
}

// Free reports whether no craft holds this dock
func (d DockComponent) Free() bool {
	return d.Client == 0
}

// BeaconComponent marks a non-dock target such as the home pad
type BeaconComponent struct {
	Name string
}
