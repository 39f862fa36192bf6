package server

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fernweh-travel/fernweh/internal/observability/metrics"
	"github.com/fernweh-travel/fernweh/internal/observability/tracer"
)

// ObservabilityShutdownFunc flushes and stops the telemetry providers.
type ObservabilityShutdownFunc func(context.Context) error

// InitObservability stands up the OTEL tracer and meter providers, then
// builds the application metric instruments against them. Instrument
// creation must come second: it reads the global meter provider.
func InitObservability(serviceName, metricsEndpoint string, logger *zap.Logger) (ObservabilityShutdownFunc, error) {
	otelShutdown, err := tracer.InitOtelProviders(serviceName, metricsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize OpenTelemetry: %w", err)
	}

	metrics.InitAppMetrics()
	logger.Info("Observability initialized", zap.String("metrics_endpoint", metricsEndpoint+"/metrics"))

	return otelShutdown, nil
}
