package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/skyport/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
