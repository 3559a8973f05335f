package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 reading stored as IEEE-754 bits, the zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

// Set replaces the reading
func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

// Load returns the latest reading
func (g *Gauge) Load() float64 {
	return math.Float64frombits(g.bits.Load())
}
