// Package handler processes incoming query requests from Grafana against the
// constants registry. It handles query parsing, validation, dispatch by query
// type and response formatting.
package handler

import (
	"context"
	"fmt"
	"time"

	"cellery-observability-datasource/pkg/constant"
	"cellery-observability-datasource/pkg/formatter"
	"cellery-observability-datasource/pkg/metrics"
	"cellery-observability-datasource/pkg/models"
	"cellery-observability-datasource/pkg/registry"
	"cellery-observability-datasource/pkg/utils"
	"cellery-observability-datasource/pkg/validator"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/backend/log"
	"github.com/grafana/grafana-plugin-sdk-go/data"
)

// QueryError represents an error while processing a single query.
type QueryError struct {
	RefID string
	Msg   string
	Err   error // Wrapped error
}

func (e *QueryError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("query %s: %s: %v", e.RefID, e.Msg, e.Err)
	}
	return fmt.Sprintf("query %s: %s", e.RefID, e.Msg)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Label values recorded for queries whose JSON cannot be parsed or whose type
// is not one the datasource serves.
const (
	invalidQueryLabel = "invalid"
	unknownQueryLabel = "unknown"
)

// queryTypeLabel bounds the query_type label to the served query types.
func queryTypeLabel(queryType string) string {
	switch queryType {
	case models.QueryTypeConstants, models.QueryTypeRelativeTime, models.QueryTypeClassify:
		return queryType
	default:
		return unknownQueryLabel
	}
}

// HandleQuery processes a single Grafana data query.
func HandleQuery(ctx context.Context, query backend.DataQuery) *backend.DataResponse {
	logger := log.DefaultLogger.FromContext(ctx)
	start := time.Now()

	qm, err := models.LoadQueryModel(query.JSON)
	if err != nil {
		logger.Error("Error parsing query JSON", "refId", query.RefID, "error", err)
		metrics.RecordQuery(invalidQueryLabel, time.Since(start), err)
		return errorResponse(&QueryError{RefID: query.RefID, Msg: "invalid query", Err: err})
	}

	logger.Debug("Processing query", "refId", query.RefID, "queryType", qm.QueryType, "group", qm.Group, "expression", qm.Expression)

	frame, err := execute(qm)
	metrics.RecordQuery(queryTypeLabel(qm.QueryType), time.Since(start), err)
	if err != nil {
		logger.Error("Query failed", "refId", query.RefID, "queryType", qm.QueryType, "error", err)
		return errorResponse(&QueryError{RefID: query.RefID, Msg: fmt.Sprintf("%s query failed", qm.QueryType), Err: err})
	}

	frame.RefID = query.RefID
	return &backend.DataResponse{Frames: data.Frames{frame}}
}

func execute(qm *models.QueryModel) (*data.Frame, error) {
	if err := validator.ValidateQuery(qm); err != nil {
		return nil, err
	}

	switch qm.QueryType {
	case models.QueryTypeConstants:
		if qm.Group == "" {
			return formatter.FormatEntries(registry.Entries()), nil
		}
		entries, err := registry.EntriesInGroup(qm.Group)
		if err != nil {
			return nil, err
		}
		return formatter.FormatEntries(entries), nil
	case models.QueryTypeRelativeTime:
		// ValidateQuery has already rejected expressions that do not match.
		tokens, _ := utils.RelativeTimeTokens(qm.Expression)
		return formatter.FormatTimeTokens(tokens), nil
	case models.QueryTypeClassify:
		return formatter.FormatClassification(constant.ClassifyComponentName(qm.Expression)), nil
	default:
		return nil, fmt.Errorf("unsupported query type %q", qm.QueryType)
	}
}

func errorResponse(err error) *backend.DataResponse {
	resp := backend.ErrDataResponse(backend.StatusBadRequest, err.Error())
	resp.Error = err
	return &resp
}
