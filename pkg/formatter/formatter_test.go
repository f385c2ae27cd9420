package formatter

import (
	"testing"

	"cellery-observability-datasource/pkg/constant"
	"cellery-observability-datasource/pkg/registry"
	"cellery-observability-datasource/pkg/testutil"
	"cellery-observability-datasource/pkg/utils"

	"github.com/grafana/grafana-plugin-sdk-go/data"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatEntries(t *testing.T) {
	entries := []registry.Entry{
		{Path: "Status.Success", Value: "Success", Kind: registry.KindEnum},
		{Path: "Dashboard.SIDE_NAV_BAR_WIDTH", Value: 240, Kind: registry.KindLayout},
	}

	frame := FormatEntries(entries)

	assert.Equal(t, constant.ConstantsFrameName, frame.Name)
	testutil.AssertFrameFields(t, frame, []string{"path", "value", "kind"})
	require.Equal(t, 2, frame.Rows())
	assert.Equal(t, "Status.Success", frame.Fields[0].At(0))
	assert.Equal(t, "Success", frame.Fields[1].At(0))
	assert.Equal(t, "enum", frame.Fields[2].At(0))
	assert.Equal(t, "240", frame.Fields[1].At(1))
	assert.Equal(t, data.VisType(data.VisTypeTable), frame.Meta.PreferredVisualization)
}

func TestFormatEntriesEmpty(t *testing.T) {
	frame := FormatEntries(nil)

	testutil.AssertFrameFields(t, frame, []string{"path", "value", "kind"})
	assert.Equal(t, 0, frame.Rows())
}

func TestFormatTimeTokens(t *testing.T) {
	frame := FormatTimeTokens([]utils.TimeToken{
		{Quantity: "5", Unit: "minutes"},
		{Quantity: "2", Unit: "hours"},
	})

	assert.Equal(t, constant.RelativeTimeFrameName, frame.Name)
	testutil.AssertFrameFields(t, frame, []string{"quantity", "unit"})
	require.Equal(t, 2, frame.Rows())
	assert.Equal(t, "2", frame.Fields[0].At(1))
	assert.Equal(t, "hours", frame.Fields[1].At(1))
}

func TestFormatClassification(t *testing.T) {
	frame := FormatClassification(constant.ClassifyComponentName("pet-be--gateway"))

	assert.Equal(t, constant.ClassificationFrameName, frame.Name)
	testutil.AssertFrameFields(t, frame, []string{"name", "cellery_type", "cell", "component", "gateway"})
	require.Equal(t, 1, frame.Rows())
	assert.Equal(t, "pet-be--gateway", frame.Fields[0].At(0))
	assert.Equal(t, "Component", frame.Fields[1].At(0))
	assert.Equal(t, "pet-be", frame.Fields[2].At(0))
	assert.Equal(t, "gateway", frame.Fields[3].At(0))
	assert.Equal(t, true, frame.Fields[4].At(0))
}
