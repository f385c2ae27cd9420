package constant

const (
	// Field names used in Grafana DataFrames
	PathFieldName        = "path"
	ValueFieldName       = "value"
	KindFieldName        = "kind"
	QuantityFieldName    = "quantity"
	UnitFieldName        = "unit"
	NameFieldName        = "name"
	CelleryTypeFieldName = "cellery_type"
	CellFieldName        = "cell"
	ComponentFieldName   = "component"
	GatewayFieldName     = "gateway"

	// Frame names used for Grafana DataFrames
	ConstantsFrameName      = "constants"
	RelativeTimeFrameName   = "relative_time"
	ClassificationFrameName = "classification"
)
