package status

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
)

// Kind tells a reading's source apart for formatting
type Kind uint8

const (
	KindCounter Kind = iota
	KindGauge
	KindFlag
)

// Reading is one metric value captured by Snapshot
// Flags read 1 when set
type Reading struct {
	Name  string
	Kind  Kind
	Value float64
}

// String renders name=value, counters without a fraction and flags as on/off
func (r Reading) String() string {
	var v string
	switch r.Kind {
	case KindCounter:
		v = strconv.FormatInt(int64(r.Value), 10)
	case KindFlag:
		v = "off"
		if r.Value != 0 {
			v = "on"
		}
	default:
		v = strconv.FormatFloat(r.Value, 'f', 1, 64)
	}
	return r.Name + "=" + v
}

// Registry holds named live metrics
// Systems cache the returned pointers at construction and write them from the tick loop,
// readers such as the HUD and the headless report call Snapshot from other goroutines
type Registry struct {
	counters *table[atomic.Int64]
	gauges   *table[Gauge]
	flags    *table[atomic.Bool]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		counters: newTable[atomic.Int64](),
		gauges:   newTable[Gauge](),
		flags:    newTable[atomic.Bool](),
	}
}

// Counter returns the integer metric for name, creating it at zero
func (r *Registry) Counter(name string) *atomic.Int64 {
	return r.counters.get(name)
}

// Gauge returns the float metric for name, creating it at zero
func (r *Registry) Gauge(name string) *Gauge {
	return r.gauges.get(name)
}

// Flag returns the boolean metric for name, creating it unset
func (r *Registry) Flag(name string) *atomic.Bool {
	return r.flags.get(name)
}

// Len returns the number of registered metrics of every kind
func (r *Registry) Len() int {
	return r.counters.len() + r.gauges.len() + r.flags.len()
}

// Snapshot captures all metrics whose name starts with one of prefixes, sorted by name
// No prefixes selects everything
func (r *Registry) Snapshot(prefixes ...string) []Reading {
	keep := func(name string) bool {
		if len(prefixes) == 0 {
			return true
		}
		for _, p := range prefixes {
			if strings.HasPrefix(name, p) {
				return true
			}
		}
		return false
	}

	var out []Reading
	r.counters.each(keep, func(name string, v *atomic.Int64) {
		out = append(out, Reading{Name: name, Kind: KindCounter, Value: float64(v.Load())})
	})
	r.gauges.each(keep, func(name string, v *Gauge) {
		out = append(out, Reading{Name: name, Kind: KindGauge, Value: v.Load()})
	})
	r.flags.each(keep, func(name string, v *atomic.Bool) {
		val := 0.0
		if v.Load() {
			val = 1
		}
		out = append(out, Reading{Name: name, Kind: KindFlag, Value: val})
	})

	slices.SortFunc(out, func(a, b Reading) int { return cmp.Compare(a.Name, b.Name) })
	return out
}

// Line joins a snapshot into a single space separated line
func Line(readings []Reading) string {
	parts := make([]string, len(readings))
	for i, rd := range readings {
		parts[i] = rd.String()
	}
	return strings.Join(parts, " ")
}
