// Package constant holds the literal values shared by the Cellery observability
// dashboard: display formats, query patterns, naming conventions, enumeration
// tags and layout defaults. Every value is a Go constant, so none of them can be
// reassigned after the program starts.
package constant

// Display formats (moment.js tokens, rendered by the dashboard).
const (
	DateTimePattern        = "DD MMM YYYY, hh:mm A"
	PreciseDateTimePattern = "DD MMM YYYY, hh:mm:ss A"
)

// Time unit fragments accepted in relative time queries. Each matches the
// singular or plural form of the unit.
const (
	SecondsPattern = "second(?:s)?"
	MinutesPattern = "minute(?:s)?"
	HoursPattern   = "hour(?:s)?"
	DaysPattern    = "day(?:s)?"
	MonthsPattern  = "month(?:s)?"
	YearsPattern   = "year(?:s)?"
)

// Patterns derived from the unit fragments above. Alternation order is
// longest duration first and must not change.
const (
	TimeUnitPattern = YearsPattern + "|" + MonthsPattern + "|" +
		DaysPattern + "|" + HoursPattern + "|" + MinutesPattern + "|" +
		SecondsPattern

	// TimePattern captures the quantity and the unit of a single time token.
	TimePattern = `([0-9]+)\s*(` + TimeUnitPattern + `)`

	// RelativeTimePattern matches "now" optionally followed by dash-led
	// groups of time tokens, e.g. "now - 5 minutes" or "now-5minutes-2hours".
	RelativeTimePattern = `^\s*now\s*(?:-\s*(?:` + TimePattern + `\s*)+)*$`
)

// Naming conventions of cells and system components.
const (
	GatewayNamePattern   = `^gateway$`
	ComponentNamePattern = `^(.+)--(.+)$`

	IstioMixerNamePattern                 = `^istio-mixer$`
	GlobalGatewayNamePattern              = `^global-gateway$`
	SidecarAuthFilterOperationNamePattern = `^async\sext_authz\segress$`
)

// SpanKind is the kind tag of a traced span.
type SpanKind string

const (
	SpanKindClient   SpanKind = "CLIENT"
	SpanKindServer   SpanKind = "SERVER"
	SpanKindProducer SpanKind = "PRODUCER"
	SpanKindConsumer SpanKind = "CONSUMER"
)

// InstanceKind distinguishes the deployable grouping units.
type InstanceKind string

const (
	InstanceKindCell      InstanceKind = "Cell"
	InstanceKindComposite InstanceKind = "Composite"
)

// CelleryType tells system components apart from user components.
type CelleryType string

const (
	CelleryTypeSystem    CelleryType = "System"
	CelleryTypeComponent CelleryType = "Component"
)

// Status is the health label used to color dashboard elements.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusError   Status = "Error"
	StatusWarning Status = "Warning"
	StatusUnknown Status = "Unknown"
)

// Dashboard layout and filter defaults.
const (
	DashboardAllValue        = "All"
	DashboardInbound         = "Inbound"
	DashboardOutbound        = "Outbound"
	DashboardSideNavBarWidth = 240
	DashboardAuthorizationEP = "/oauth2/authorize?response_type=code"
)

// Runtime scoping used when no runtime or namespace is selected.
const (
	LocalRuntimeID   = "cellery-default"
	DefaultNamespace = "default"
)

// SpanKinds returns every span kind in declaration order.
func SpanKinds() []SpanKind {
	return []SpanKind{SpanKindClient, SpanKindServer, SpanKindProducer, SpanKindConsumer}
}

// InstanceKinds returns every instance kind in declaration order.
func InstanceKinds() []InstanceKind {
	return []InstanceKind{InstanceKindCell, InstanceKindComposite}
}

// CelleryTypes returns every cellery type in declaration order.
func CelleryTypes() []CelleryType {
	return []CelleryType{CelleryTypeSystem, CelleryTypeComponent}
}

// Statuses returns every status in declaration order.
func Statuses() []Status {
	return []Status{StatusSuccess, StatusError, StatusWarning, StatusUnknown}
}
