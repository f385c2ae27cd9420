// Package plugin implements the Cellery observability Grafana datasource plugin.
// It serves the dashboard constants registry to the frontend as queries and resources.
package plugin

import (
	"context"
	"fmt"

	"cellery-observability-datasource/pkg/config"
	"cellery-observability-datasource/pkg/handler"
	"cellery-observability-datasource/pkg/health"
	"cellery-observability-datasource/pkg/validator"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/backend/instancemgmt"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
	"github.com/grafana/grafana-plugin-sdk-go/backend/resource/httpadapter"
)

var (
	_ backend.QueryDataHandler      = (*Datasource)(nil)
	_ backend.CheckHealthHandler    = (*Datasource)(nil)
	_ backend.CallResourceHandler   = (*Datasource)(nil)
	_ instancemgmt.InstanceDisposer = (*Datasource)(nil)
)

// Datasource implements the Cellery Grafana datasource plugin.
// It handles data queries, health checks, and resource calls.
type Datasource struct {
	settings        *config.Settings
	resourceHandler backend.CallResourceHandler
}

// NewDatasource creates a new instance of the Cellery datasource.
// It is called by the Grafana plugin SDK when a new datasource instance is needed.
//
// Parameters:
//   - ctx: The context for the operation
//   - settings: The datasource instance settings from Grafana
//
// Returns:
//   - instancemgmt.Instance: The new datasource instance
//   - error: Any error that occurred during creation
func NewDatasource(ctx context.Context, settings backend.DataSourceInstanceSettings) (instancemgmt.Instance, error) {
	logger := log.DefaultLogger.FromContext(ctx)

	cfg, err := config.LoadSettings(settings)
	if err != nil {
		logger.Error("Failed to load plugin settings", "error", err, "datasourceID", settings.ID)
		return nil, fmt.Errorf("failed to load plugin settings: %w", err)
	}

	if err := validator.ValidateSettings(cfg); err != nil {
		logger.Error("Invalid plugin configuration", "error", err, "datasourceID", settings.ID)
		return nil, fmt.Errorf("invalid plugin configuration: %w", err)
	}

	ds := &Datasource{settings: cfg}
	ds.resourceHandler = httpadapter.New(ds.newRouter())

	logger.Debug("Cellery Datasource instance created", "datasourceID", settings.ID, "runtimeId", cfg.RuntimeID, "namespace", cfg.Namespace)
	return ds, nil
}

// Dispose cleans up resources when a datasource instance is no longer needed.
// It is called by the Grafana plugin SDK when a datasource instance is being disposed.
func (d *Datasource) Dispose() {
	log.DefaultLogger.Debug("Cellery Datasource instance disposed")
}

// QueryData handles incoming data queries from Grafana.
// It processes multiple queries in parallel and returns the results.
func (d *Datasource) QueryData(ctx context.Context, req *backend.QueryDataRequest) (*backend.QueryDataResponse, error) {
	response := backend.NewQueryDataResponse()

	type queryResult struct {
		refID string
		res   backend.DataResponse
	}
	queryResults := make(chan queryResult, len(req.Queries))

	for _, q := range req.Queries {
		go func(query backend.DataQuery) {
			res := handler.HandleQuery(ctx, query)
			queryResults <- queryResult{query.RefID, *res}
		}(q)
	}

	for i := 0; i < len(req.Queries); i++ {
		result := <-queryResults
		response.Responses[result.refID] = result.res
	}

	return response, nil
}

// CheckHealth performs a health check of the datasource.
// It validates the configuration and verifies the constants registry.
func (d *Datasource) CheckHealth(ctx context.Context, req *backend.CheckHealthRequest) (*backend.CheckHealthResult, error) {
	log.DefaultLogger.Debug("Datasource.CheckHealth: Initiating health check routing")

	var settings backend.DataSourceInstanceSettings
	if req.PluginContext.DataSourceInstanceSettings != nil {
		settings = *req.PluginContext.DataSourceInstanceSettings
	}

	healthResult, err := health.ExecuteHealthCheck(ctx, settings)
	if err != nil {
		log.DefaultLogger.Error("Datasource.CheckHealth: Health check failed internally", "error", err)
		return &backend.CheckHealthResult{
			Status:  backend.HealthStatusError,
			Message: fmt.Sprintf("Health check encountered an internal error: %s", err.Error()),
		}, nil
	}

	return healthResult, nil
}

// CallResource serves the resource routes of the datasource.
func (d *Datasource) CallResource(ctx context.Context, req *backend.CallResourceRequest, sender backend.CallResourceResponseSender) error {
	return d.resourceHandler.CallResource(ctx, req, sender)
}
