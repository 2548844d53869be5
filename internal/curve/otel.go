package curve

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/wtsight/armorcalc/internal/curve"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
