package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Counters holds the simulation's OTel instruments
// A nil *Counters is valid and records nothing
type Counters struct {
	commandsApplied   metric.Int64Counter
	commandsDropped   metric.Int64Counter
	fuelSupplied      metric.Float64Counter
	docksClaimed      metric.Int64Counter
	servicesCompleted metric.Int64Counter
	targetsChanged    metric.Int64Counter
}

// New creates counters on the global OTel meter provider (no-op if not configured)
func New() (*Counters, error) {
	m := meter()
	c := &Counters{}

	var err error

	c.commandsApplied, err = m.Int64Counter(
		"skyport.control.applied",
		metric.WithDescription("Control commands applied to craft"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating applied counter: %w", err)
	}

	c.commandsDropped, err = m.Int64Counter(
		"skyport.control.dropped",
		metric.WithDescription("Control commands dropped by the fuel or service guard"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}

	c.fuelSupplied, err = m.Float64Counter(
		"skyport.fuel.supplied",
		metric.WithDescription("Fuel granted by docks"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating supplied counter: %w", err)
	}

	c.docksClaimed, err = m.Int64Counter(
		"skyport.dock.claimed",
		metric.WithDescription("Docks linked to a craft by the proximity scan"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating claimed counter: %w", err)
	}

	c.servicesCompleted, err = m.Int64Counter(
		"skyport.service.completed",
		metric.WithDescription("Service cycles finished with a full tank"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating completed counter: %w", err)
	}

	c.targetsChanged, err = m.Int64Counter(
		"skyport.target.changed",
		metric.WithDescription("Navigation target reassignments"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating target counter: %w", err)
	}

	return c, nil
}

func (c *Counters) CommandApplied(axis string) {
	if c == nil {
		return
	}
	c.commandsApplied.Add(context.Background(), 1, metric.WithAttributes(attribute.String("axis", axis)))
}

func (c *Counters) CommandDropped(axis, reason string) {
	if c == nil {
		return
	}
	c.commandsDropped.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("axis", axis),
		attribute.String("reason", reason),
	))
}

func (c *Counters) FuelSupplied(amount float64) {
	if c == nil {
		return
	}
	c.fuelSupplied.Add(context.Background(), amount)
}

func (c *Counters) DockClaimed() {
	if c == nil {
		return
	}
	c.docksClaimed.Add(context.Background(), 1)
}

func (c *Counters) ServiceCompleted() {
	if c == nil {
		return
	}
	c.servicesCompleted.Add(context.Background(), 1)
}

func (c *Counters) TargetChanged() {
	if c == nil {
		return
	}
	c.targetsChanged.Add(context.Background(), 1)
}
