package constant

import "regexp"

var (
	gatewayNameRegex                = regexp.MustCompile(GatewayNamePattern)
	componentNameRegex              = regexp.MustCompile(ComponentNamePattern)
	istioMixerNameRegex             = regexp.MustCompile(IstioMixerNamePattern)
	globalGatewayNameRegex          = regexp.MustCompile(GlobalGatewayNamePattern)
	sidecarAuthFilterOperationRegex = regexp.MustCompile(SidecarAuthFilterOperationNamePattern)
)

// IsGatewayName reports whether name is the reserved gateway of a cell.
func IsGatewayName(name string) bool {
	return gatewayNameRegex.MatchString(name)
}

// SplitComponentName splits a "cell--component" identifier into its cell and
// component parts. ok is false when name has no "--" separator.
func SplitComponentName(name string) (cell string, component string, ok bool) {
	matches := componentNameRegex.FindStringSubmatch(name)
	if len(matches) != 3 {
		return "", "", false
	}
	return matches[1], matches[2], true
}

// IsSystemComponentName reports whether name is one of the reserved system
// components (the Istio mixer or the global gateway).
func IsSystemComponentName(name string) bool {
	return istioMixerNameRegex.MatchString(name) || globalGatewayNameRegex.MatchString(name)
}

// IsSidecarAuthFilterOperation reports whether operationName is the span emitted
// by the sidecar's external authorization filter.
func IsSidecarAuthFilterOperation(operationName string) bool {
	return sidecarAuthFilterOperationRegex.MatchString(operationName)
}

// CelleryTypeOf returns the cellery type a component name belongs to.
func CelleryTypeOf(name string) CelleryType {
	if IsSystemComponentName(name) {
		return CelleryTypeSystem
	}
	return CelleryTypeComponent
}

// ComponentClassification is what the naming conventions say about a
// component name.
type ComponentClassification struct {
	Name        string
	CelleryType CelleryType
	Cell        string
	Component   string
	Gateway     bool
}

// ClassifyComponentName applies every cell and system naming convention to name.
func ClassifyComponentName(name string) ComponentClassification {
	c := ComponentClassification{
		Name:        name,
		CelleryType: CelleryTypeOf(name),
		Component:   name,
	}
	if cell, component, ok := SplitComponentName(name); ok {
		c.Cell = cell
		c.Component = component
	}
	c.Gateway = IsGatewayName(c.Component)
	return c
}
