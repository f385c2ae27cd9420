// Package validator provides validation functions for plugin settings and queries.
// It makes sure runtime scoping values and user input agree with the registry
// before a query is processed.
package validator

import (
	"fmt"
	"slices"
	"strings"

	"cellery-observability-datasource/pkg/config"
	"cellery-observability-datasource/pkg/models"
	"cellery-observability-datasource/pkg/registry"
	"cellery-observability-datasource/pkg/utils"

	"k8s.io/apimachinery/pkg/util/validation"
)

// ValidationError represents rejected settings or query input.
type ValidationError struct {
	Msg string
	Err error // Wrapped error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Msg, e.Err)
	}
	return fmt.Sprintf("validation error: %s", e.Msg)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateSettings validates the plugin settings
func ValidateSettings(settings *config.Settings) error {
	if settings == nil {
		return &ValidationError{Msg: "plugin settings cannot be nil"}
	}

	if errs := validation.IsDNS1123Label(settings.RuntimeID); len(errs) > 0 {
		return &ValidationError{Msg: fmt.Sprintf("runtime ID %q is invalid: %s", settings.RuntimeID, strings.Join(errs, "; "))}
	}

	if errs := validation.IsDNS1123Label(settings.Namespace); len(errs) > 0 {
		return &ValidationError{Msg: fmt.Sprintf("namespace %q is invalid: %s", settings.Namespace, strings.Join(errs, "; "))}
	}

	return nil
}

// ValidateQuery validates a query model against the registry.
func ValidateQuery(query *models.QueryModel) error {
	if query == nil {
		return &ValidationError{Msg: "query model cannot be nil"}
	}

	switch query.QueryType {
	case models.QueryTypeConstants:
		if query.Group != "" && !slices.Contains(registry.Groups(), query.Group) {
			return &ValidationError{Msg: fmt.Sprintf("unknown constants group %q", query.Group)}
		}
	case models.QueryTypeRelativeTime:
		if strings.TrimSpace(query.Expression) == "" {
			return &ValidationError{Msg: "relative time expression cannot be empty"}
		}
		if !utils.IsRelativeTime(query.Expression) {
			return &ValidationError{Msg: fmt.Sprintf("%q is not a relative time expression", query.Expression)}
		}
	case models.QueryTypeClassify:
		if query.Expression == "" {
			return &ValidationError{Msg: "component name cannot be empty"}
		}
	default:
		return &ValidationError{Msg: fmt.Sprintf("unsupported query type %q", query.QueryType)}
	}

	return nil
}
