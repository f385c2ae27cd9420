// Package formatter converts registry entries and pattern matches into Grafana
// data frames.
package formatter

import (
	"fmt"

	"cellery-observability-datasource/pkg/constant"
	"cellery-observability-datasource/pkg/registry"
	"cellery-observability-datasource/pkg/utils"

	"github.com/grafana/grafana-plugin-sdk-go/data"
)

// FormatEntries creates a table frame with one row per registry leaf.
// Numeric values are rendered as strings so the value column has a single type.
func FormatEntries(entries []registry.Entry) *data.Frame {
	paths := make([]string, len(entries))
	values := make([]string, len(entries))
	kinds := make([]string, len(entries))
	for i, entry := range entries {
		paths[i] = entry.Path
		values[i] = fmt.Sprint(entry.Value)
		kinds[i] = string(entry.Kind)
	}

	frame := data.NewFrame(constant.ConstantsFrameName,
		data.NewField(constant.PathFieldName, nil, paths),
		data.NewField(constant.ValueFieldName, nil, values),
		data.NewField(constant.KindFieldName, nil, kinds),
	)
	setTableVisualization(frame)
	return frame
}

// FormatTimeTokens creates a table frame with one row per time token of a
// relative time expression.
func FormatTimeTokens(tokens []utils.TimeToken) *data.Frame {
	quantities := make([]string, len(tokens))
	units := make([]string, len(tokens))
	for i, token := range tokens {
		quantities[i] = token.Quantity
		units[i] = token.Unit
	}

	frame := data.NewFrame(constant.RelativeTimeFrameName,
		data.NewField(constant.QuantityFieldName, nil, quantities),
		data.NewField(constant.UnitFieldName, nil, units),
	)
	setTableVisualization(frame)
	return frame
}

// FormatClassification creates a single-row frame describing a component name.
func FormatClassification(c constant.ComponentClassification) *data.Frame {
	frame := data.NewFrame(constant.ClassificationFrameName,
		data.NewField(constant.NameFieldName, nil, []string{c.Name}),
		data.NewField(constant.CelleryTypeFieldName, nil, []string{string(c.CelleryType)}),
		data.NewField(constant.CellFieldName, nil, []string{c.Cell}),
		data.NewField(constant.ComponentFieldName, nil, []string{c.Component}),
		data.NewField(constant.GatewayFieldName, nil, []bool{c.Gateway}),
	)
	setTableVisualization(frame)
	return frame
}

func setTableVisualization(frame *data.Frame) {
	frame.Meta = &data.FrameMeta{
		PreferredVisualization: data.VisTypeTable,
	}
}
