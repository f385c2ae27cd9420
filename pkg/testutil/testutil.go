package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
	"github.com/grafana/grafana-plugin-sdk-go/data"
	"github.com/stretchr/testify/require"
)

// CreateTestQuery creates a test query with the given refID and query model fields
func CreateTestQuery(t *testing.T, refID string, queryType string, expression string) backend.DataQuery {
	t.Helper()

	queryJSON := map[string]interface{}{
		"queryType":  queryType,
		"expression": expression,
	}

	jsonBytes, err := json.Marshal(queryJSON)
	require.NoError(t, err)

	return backend.DataQuery{
		RefID:     refID,
		QueryType: queryType,
		JSON:      jsonBytes,
		TimeRange: backend.TimeRange{
			From: time.Now().Add(-1 * time.Hour),
			To:   time.Now(),
		},
	}
}

// CreateTestSettings creates test datasource settings
func CreateTestSettings(t *testing.T, runtimeID string, namespace string) *backend.DataSourceInstanceSettings {
	t.Helper()

	jsonBytes, err := json.Marshal(map[string]string{
		"runtimeId": runtimeID,
		"namespace": namespace,
	})
	require.NoError(t, err)

	return &backend.DataSourceInstanceSettings{
		ID:       1,
		Name:     "test-datasource",
		JSONData: jsonBytes,
	}
}

// AssertFrameFields checks if a data frame has the expected fields
func AssertFrameFields(t *testing.T, frame *data.Frame, expectedFields []string) {
	t.Helper()

	require.Equal(t, len(expectedFields), len(frame.Fields), "number of fields")
	for i, field := range frame.Fields {
		require.Equal(t, expectedFields[i], field.Name, "field name")
	}
}

// CreateTestPluginContext creates a test plugin context
func CreateTestPluginContext(t *testing.T, settings *backend.DataSourceInstanceSettings) backend.PluginContext {
	t.Helper()
	return backend.PluginContext{
		DataSourceInstanceSettings: settings,
	}
}
