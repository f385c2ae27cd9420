package health

import (
	"context"
	"fmt"

	"cellery-observability-datasource/pkg/config"
	"cellery-observability-datasource/pkg/registry"
	"cellery-observability-datasource/pkg/validator"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
)

// verifyRegistry is swapped out in tests.
var verifyRegistry = registry.Verify

// PerformHealthCheck performs the health check for the Cellery datasource.
// It loads and validates the plugin settings and then verifies that every
// pattern in the registry compiles and every enumeration group is duplicate free.
//
// Parameters:
//
//	ctx: The context for the operation.
//	dsSettings: The DataSourceInstanceSettings from Grafana's health check request.
//
// Returns:
//
//	A *backend.CheckHealthResult indicating the status and a message for Grafana.
//	An error if an unexpected internal Go error occurs during the process.
func PerformHealthCheck(ctx context.Context, dsSettings backend.DataSourceInstanceSettings) (*backend.CheckHealthResult, error) {
	logger := log.DefaultLogger.FromContext(ctx)
	logger.Debug("health.PerformHealthCheck: Starting health check")

	settings, err := config.LoadSettings(dsSettings)
	if err != nil {
		logger.Error("health.PerformHealthCheck: Failed to load plugin settings", "error", err)
		return &backend.CheckHealthResult{
			Status:  backend.HealthStatusError,
			Message: fmt.Sprintf("Failed to load datasource configuration: %s", err.Error()),
		}, nil
	}

	if err := validator.ValidateSettings(settings); err != nil {
		logger.Error("health.PerformHealthCheck: Invalid plugin settings", "error", err)
		return &backend.CheckHealthResult{
			Status:  backend.HealthStatusError,
			Message: fmt.Sprintf("Plugin configuration validation failed: %s", err.Error()),
		}, nil
	}

	if err := verifyRegistry(); err != nil {
		logger.Error("health.PerformHealthCheck: Registry verification failed", "error", err)
		return &backend.CheckHealthResult{
			Status:  backend.HealthStatusError,
			Message: fmt.Sprintf("Constants registry is inconsistent: %s", err.Error()),
		}, nil
	}

	result := &backend.CheckHealthResult{
		Status: backend.HealthStatusOk,
		Message: fmt.Sprintf("Constants registry loaded with %d entries. Runtime %q, namespace %q.",
			len(registry.Entries()), settings.RuntimeID, settings.Namespace),
	}
	logger.Debug("health.PerformHealthCheck: Health check completed", "status", result.Status.String())
	return result, nil
}

// ExecuteHealthCheck runs PerformHealthCheck. It is a variable so tests can
// replace it.
var ExecuteHealthCheck = func(ctx context.Context, dsSettings backend.DataSourceInstanceSettings) (*backend.CheckHealthResult, error) {
	return PerformHealthCheck(ctx, dsSettings)
}
