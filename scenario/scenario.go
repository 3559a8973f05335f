package scenario

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/skyport/parameter"
)

// Scenario describes the initial world layout
type Scenario struct {
	Name    string       `yaml:"name"`
	Craft   []CraftSpec  `yaml:"craft"`
	Docks   []DockSpec   `yaml:"docks,omitempty"`
	Ring    *RingSpec    `yaml:"ring,omitempty"`
	Beacons []BeaconSpec `yaml:"beacons,omitempty"`

	// Target names the entity that starts as the navigation target, empty for none
	Target string `yaml:"target,omitempty"`
}

// CraftSpec places a craft
// Fuel nil starts with a full tank
type CraftSpec struct {
	Name      string     `yaml:"name"`
	Position  [3]float64 `yaml:"position"`
	Yaw       float64    `yaml:"yaw,omitempty"`
	Fuel      *float64   `yaml:"fuel,omitempty"`
	Pilot     bool       `yaml:"pilot,omitempty"`
	Autopilot bool       `yaml:"autopilot,omitempty"`
}

// DockSpec places a single dock
type DockSpec struct {
	Name     string     `yaml:"name"`
	Position [3]float64 `yaml:"position"`
}

// RingSpec lays out Count docks evenly on a horizontal circle around the origin
type RingSpec struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
	Height float64 `yaml:"height"`
}

// BeaconSpec places a static non-dock target
type BeaconSpec struct {
	Name     string     `yaml:"name"`
	Position [3]float64 `yaml:"position"`
}

var (
	ErrNoCraft        = errors.New("scenario has no craft")
	ErrMultiplePilots = errors.New("scenario has more than one piloted craft")
	ErrDuplicateName  = errors.New("duplicate entity name")
	ErrUnknownTarget  = errors.New("target names no entity")
	ErrTooManyCraft   = errors.New("scenario exceeds craft limit")
	ErrTooManyDocks   = errors.New("scenario exceeds dock limit")
)

// Default reproduces the reference world: a ring of docks, one piloted drone and a home pad
func Default() *Scenario {
	return &Scenario{
		Name: "default",
		Craft: []CraftSpec{
			{Name: "drone", Position: [3]float64{0, 10, 0}, Pilot: true},
		},
		Ring: &RingSpec{
			Count:  parameter.DockCount,
			Radius: parameter.DockRingRadius,
			Height: parameter.DockRingHeight,
		},
		Beacons: []BeaconSpec{
			{Name: "home", Position: [3]float64{0, 0, 0}},
		},
		Target: "home",
	}
}

// Load decodes a YAML scenario and validates it
func Load(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile opens and decodes a YAML scenario file
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Validate checks structural constraints
func (s *Scenario) Validate() error {
	if len(s.Craft) == 0 {
		return ErrNoCraft
	}
	if len(s.Craft) > parameter.MaxCraft {
		return fmt.Errorf("%w: %d > %d", ErrTooManyCraft, len(s.Craft), parameter.MaxCraft)
	}
	docks := s.AllDocks()
	if len(docks) > parameter.MaxDocks {
		return fmt.Errorf("%w: %d > %d", ErrTooManyDocks, len(docks), parameter.MaxDocks)
	}

	names := make(map[string]bool)
	claim := func(name string) error {
		if name == "" {
			return nil
		}
		if names[name] {
			return fmt.Errorf("%w: %s", ErrDuplicateName, name)
		}
		names[name] = true
		return nil
	}

	pilots := 0
	for _, c := range s.Craft {
		if c.Pilot {
			pilots++
		}
		if err := claim(c.Name); err != nil {
			return err
		}
	}
	if pilots > 1 {
		return ErrMultiplePilots
	}
	for _, d := range docks {
		if err := claim(d.Name); err != nil {
			return err
		}
	}
	for _, b := range s.Beacons {
		if err := claim(b.Name); err != nil {
			return err
		}
	}
	if s.Target != "" && !names[s.Target] {
		return fmt.Errorf("%w: %s", ErrUnknownTarget, s.Target)
	}
	return nil
}

// AllDocks returns explicit docks followed by the ring layout
func (s *Scenario) AllDocks() []DockSpec {
	docks := append([]DockSpec(nil), s.Docks...)
	if s.Ring == nil || s.Ring.Count <= 0 {
		return docks
	}
	for i := 0; i < s.Ring.Count; i++ {
		angle := float64(i) / float64(s.Ring.Count) * 2 * math.Pi
		docks = append(docks, DockSpec{
			Name: fmt.Sprintf("dock-%02d", i),
			Position: [3]float64{
				s.Ring.Radius * math.Cos(angle),
				s.Ring.Height,
				s.Ring.Radius * math.Sin(angle),
			},
		})
	}
	return docks
}
