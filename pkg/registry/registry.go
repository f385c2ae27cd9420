// Package registry exposes the dashboard constants as one typed, nested value
// whose JSON shape is the one the frontend reads (Pattern.Query.TIME,
// Span.Kind.CLIENT, ...). The registry is built once during package
// initialization and handed out by copy, so no caller can change what another
// caller sees.
package registry

import (
	"cellery-observability-datasource/pkg/constant"
)

// Registry is the root of the configuration tree.
type Registry struct {
	Pattern      Pattern       `json:"Pattern"`
	Span         Span          `json:"Span"`
	InstanceKind InstanceKinds `json:"InstanceKind" kind:"enum"`
	Cell         Cell          `json:"Cell" kind:"naming"`
	System       System        `json:"System" kind:"naming"`
	CelleryType  CelleryTypes  `json:"CelleryType" kind:"enum"`
	Status       Statuses      `json:"Status" kind:"enum"`
	Dashboard    Dashboard     `json:"Dashboard" kind:"layout"`
	Runtime      Runtime       `json:"Runtime" kind:"runtime"`
}

// Pattern groups the display formats and the query patterns.
type Pattern struct {
	DateTime        string `json:"DATE_TIME" kind:"format"`
	PreciseDateTime string `json:"PRECISE_DATE_TIME" kind:"format"`
	Query           Query  `json:"Query"`
}

// Query holds the patterns used to recognise relative time expressions. The
// last three fields are derived from the unit fragments.
type Query struct {
	Seconds string `json:"SECONDS" kind:"pattern"`
	Minutes string `json:"MINUTES" kind:"pattern"`
	Hours   string `json:"HOURS" kind:"pattern"`
	Days    string `json:"DAYS" kind:"pattern"`
	Months  string `json:"MONTHS" kind:"pattern"`
	Years   string `json:"YEARS" kind:"pattern"`

	TimeUnit     string `json:"TIME_UNIT" kind:"derived"`
	Time         string `json:"TIME" kind:"derived"`
	RelativeTime string `json:"RELATIVE_TIME" kind:"derived"`
}

// Span holds the tracing span constants.
type Span struct {
	Kind SpanKinds `json:"Kind" kind:"enum"`
}

// SpanKinds enumerates the kinds a span can have.
type SpanKinds struct {
	Client   constant.SpanKind `json:"CLIENT"`
	Server   constant.SpanKind `json:"SERVER"`
	Producer constant.SpanKind `json:"PRODUCER"`
	Consumer constant.SpanKind `json:"CONSUMER"`
}

// InstanceKinds enumerates the kinds of Cellery instances.
type InstanceKinds struct {
	Cell      constant.InstanceKind `json:"CELL"`
	Composite constant.InstanceKind `json:"COMPOSITE"`
}

// Cell holds the naming conventions inside a cell.
type Cell struct {
	GatewayNamePattern   string `json:"GATEWAY_NAME_PATTERN"`
	ComponentNamePattern string `json:"COMPONENT_NAME_PATTERN"`
}

// System holds the naming conventions of the system components.
type System struct {
	IstioMixerNamePattern                 string `json:"ISTIO_MIXER_NAME_PATTERN"`
	GlobalGatewayNamePattern              string `json:"GLOBAL_GATEWAY_NAME_PATTERN"`
	SidecarAuthFilterOperationNamePattern string `json:"SIDECAR_AUTH_FILTER_OPERATION_NAME_PATTERN"`
}

// CelleryTypes tells system components apart from user components.
type CelleryTypes struct {
	System    constant.CelleryType `json:"SYSTEM"`
	Component constant.CelleryType `json:"COMPONENT"`
}

// Statuses enumerates the health states shown on the dashboard.
type Statuses struct {
	Success constant.Status `json:"Success"`
	Error   constant.Status `json:"Error"`
	Warning constant.Status `json:"Warning"`
	Unknown constant.Status `json:"Unknown"`
}

// Dashboard holds layout values and well-known dashboard strings.
type Dashboard struct {
	AllValue        string `json:"ALL_VALUE"`
	Inbound         string `json:"INBOUND"`
	Outbound        string `json:"OUTBOUND"`
	SideNavBarWidth int    `json:"SIDE_NAV_BAR_WIDTH"`
	AuthorizationEP string `json:"AUTHORIZATION_EP"`
}

// Runtime holds the defaults used to scope a datasource to a runtime.
type Runtime struct {
	LocalRuntimeID   string `json:"LOCAL_RUNTIME_ID"`
	DefaultNamespace string `json:"DEFAULT_NAMESPACE"`
}

var (
	root    = build()
	entries = flatten(root)
	index   = indexEntries(entries)
)

// Get returns a copy of the registry.
func Get() Registry {
	return root
}

func build() Registry {
	r := Registry{
		Pattern: Pattern{
			DateTime:        constant.DateTimePattern,
			PreciseDateTime: constant.PreciseDateTimePattern,
			Query: Query{
				Seconds: constant.SecondsPattern,
				Minutes: constant.MinutesPattern,
				Hours:   constant.HoursPattern,
				Days:    constant.DaysPattern,
				Months:  constant.MonthsPattern,
				Years:   constant.YearsPattern,
			},
		},
		Span: Span{
			Kind: SpanKinds{
				Client:   constant.SpanKindClient,
				Server:   constant.SpanKindServer,
				Producer: constant.SpanKindProducer,
				Consumer: constant.SpanKindConsumer,
			},
		},
		InstanceKind: InstanceKinds{
			Cell:      constant.InstanceKindCell,
			Composite: constant.InstanceKindComposite,
		},
		Cell: Cell{
			GatewayNamePattern:   constant.GatewayNamePattern,
			ComponentNamePattern: constant.ComponentNamePattern,
		},
		System: System{
			IstioMixerNamePattern:                 constant.IstioMixerNamePattern,
			GlobalGatewayNamePattern:              constant.GlobalGatewayNamePattern,
			SidecarAuthFilterOperationNamePattern: constant.SidecarAuthFilterOperationNamePattern,
		},
		CelleryType: CelleryTypes{
			System:    constant.CelleryTypeSystem,
			Component: constant.CelleryTypeComponent,
		},
		Status: Statuses{
			Success: constant.StatusSuccess,
			Error:   constant.StatusError,
			Warning: constant.StatusWarning,
			Unknown: constant.StatusUnknown,
		},
		Dashboard: Dashboard{
			AllValue:        constant.DashboardAllValue,
			Inbound:         constant.DashboardInbound,
			Outbound:        constant.DashboardOutbound,
			SideNavBarWidth: constant.DashboardSideNavBarWidth,
			AuthorizationEP: constant.DashboardAuthorizationEP,
		},
		Runtime: Runtime{
			LocalRuntimeID:   constant.LocalRuntimeID,
			DefaultNamespace: constant.DefaultNamespace,
		},
	}

	// Derived patterns are filled in only after every base fragment is set.
	r.Pattern.Query.TimeUnit = constant.TimeUnitPattern
	r.Pattern.Query.Time = constant.TimePattern
	r.Pattern.Query.RelativeTime = constant.RelativeTimePattern

	return r
}
