package logging

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/skyport/status"
)

// StatusFields flattens metric readings into typed log fields
func StatusFields(readings []status.Reading) []zap.Field {
	fields := make([]zap.Field, 0, len(readings))
	for _, r := range readings {
		switch r.Kind {
		case status.KindCounter:
			fields = append(fields, zap.Int64(r.Name, int64(r.Value)))
		case status.KindFlag:
			fields = append(fields, zap.Bool(r.Name, r.Value != 0))
		default:
			fields = append(fields, zap.Float64(r.Name, r.Value))
		}
	}
	return fields
}
