package engine

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Scheduler advances the world on a fixed tick
// Each tick: time update, event dispatch (previous tick's events), systems in priority order
type Scheduler struct {
	world    *World
	router   *EventRouter
	interval time.Duration

	tickCount atomic.Int64

	// Overflow counters already reported
	seenEventDrops   uint64
	seenControlDrops uint64

	// Cached metric pointers
	statTicks        *atomic.Int64
	statEvents       *atomic.Int64
	statEventDrops   *atomic.Int64
	statControlDrops *atomic.Int64
}

// NewScheduler creates a scheduler stepping the world by interval per tick
func NewScheduler(world *World, interval time.Duration) *Scheduler {
	reg := world.Resource.Status
	return &Scheduler{
		world:      world,
		router:     NewEventRouter(world.Resource.Event.Queue),
		interval:   interval,
		statTicks:        reg.Counter("engine.ticks"),
		statEvents:       reg.Counter("engine.events"),
		statEventDrops:   reg.Counter("engine.events_dropped"),
		statControlDrops: reg.Counter("engine.controls_dropped"),
	}
}

// RegisterEventHandler routes the handler's event types to it
func (s *Scheduler) RegisterEventHandler(handler EventHandler) {
	s.router.Register(handler)
}

// Router exposes the event router for inspection
func (s *Scheduler) Router() *EventRouter {
	return s.router
}

// Interval returns the fixed tick step
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Ticks returns the number of completed ticks
func (s *Scheduler) Ticks() int64 {
	return s.tickCount.Load()
}

// Tick executes one simulation cycle under the world update lock
func (s *Scheduler) Tick() {
	s.world.RunSafe(func() {
		tick := s.tickCount.Load() + 1
		s.world.Resource.Time.Update(s.interval, tick)

		n := s.router.DispatchAll()
		s.world.UpdateLocked()

		s.tickCount.Store(tick)
		s.statTicks.Store(tick)
		s.statEvents.Add(int64(n))
		s.checkOverflow(tick)
	})
}

// checkOverflow warns once per tick in which either queue lost entries
func (s *Scheduler) checkOverflow(tick int64) {
	res := s.world.Resource

	if d := res.Event.Queue.Dropped(); d > s.seenEventDrops {
		res.Log.Warn("event queue overflow",
			zap.Int64("tick", tick),
			zap.Uint64("lost", d-s.seenEventDrops),
			zap.Uint64("total", d),
		)
		s.seenEventDrops = d
		s.statEventDrops.Store(int64(d))
	}
	if d := res.Control.Queue.Dropped(); d > s.seenControlDrops {
		res.Log.Warn("control queue overflow",
			zap.Int64("tick", tick),
			zap.Uint64("lost", d-s.seenControlDrops),
			zap.Uint64("total", d),
		)
		s.seenControlDrops = d
		s.statControlDrops.Store(int64(d))
	}
}

// Run ticks on wall-clock cadence until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.Tick()
		}
	}
}

// RunTicks executes n ticks back to back, stopping early on ctx cancellation
func (s *Scheduler) RunTicks(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Tick()
	}
	return nil
}
