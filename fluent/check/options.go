package check

import (
	"context"

	constant "github.com/LerianStudio/lib-fluent/fluent/constants"
	"github.com/LerianStudio/lib-fluent/fluent/format"
	"github.com/LerianStudio/lib-fluent/fluent/log"
	"go.opentelemetry.io/otel/metric"
)

// Option configures a Checker built with New.
type Option func(*Checker)

// WithFormatConfig injects the formatting configuration used for diagnostics.
func WithFormatConfig(cfg format.Config) Option {
	return func(c *Checker) {
		c.formatter = format.New(cfg)
	}
}

// WithMeter counts failed checks on a check_failed_total counter created from meter.
func WithMeter(meter metric.Meter) Option {
	return func(c *Checker) {
		if meter == nil {
			return
		}

		counter, err := newFailureCounter(meter)
		if err != nil {
			c.logger.Log(context.Background(), log.LevelWarn, "failed to create check failure counter", log.Err(err))
			return
		}

		c.failures = counter
	}
}

// WithMeterProvider is WithMeter on the provider's meter for this library's
// instrumentation scope.
func WithMeterProvider(provider metric.MeterProvider) Option {
	if provider == nil {
		return WithMeter(nil)
	}

	return WithMeter(provider.Meter(constant.TelemetrySDKName))
}
