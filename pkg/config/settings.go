// Package config provides configuration management for the Cellery observability datasource.
// It handles loading plugin settings from Grafana and applying the registry defaults.
package config

import (
	"encoding/json"
	"fmt"

	"cellery-observability-datasource/pkg/registry"

	"github.com/grafana/grafana-plugin-sdk-go/backend"
)

// SettingsError represents an error specifically related to plugin settings.
type SettingsError struct {
	Msg string
	Err error // Wrapped error
}

func (e *SettingsError) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return fmt.Sprintf("%s: %v", e.Msg, e.Err)
		}
		return fmt.Sprintf("%v", e.Err)
	}
	return e.Msg
}

func (e *SettingsError) Unwrap() error {
	return e.Err
}

// Settings holds the configuration settings for the Cellery datasource.
type Settings struct {
	// RuntimeID selects the Cellery runtime to observe.
	RuntimeID string `json:"runtimeId"`
	// Namespace selects the namespace within that runtime.
	Namespace string `json:"namespace"`
}

// LoadSettings unmarshals the JSON data from Grafana's DataSourceInstanceSettings
// into a Settings struct. Missing values fall back to the local runtime and the
// default namespace.
func LoadSettings(source backend.DataSourceInstanceSettings) (*Settings, error) {
	settings := Settings{}
	if len(source.JSONData) > 0 {
		if err := json.Unmarshal(source.JSONData, &settings); err != nil {
			return nil, &SettingsError{Msg: "could not unmarshal Settings JSON", Err: err}
		}
	}

	settings.applyDefaults()
	return &settings, nil
}

func (s *Settings) applyDefaults() {
	runtime := registry.Get().Runtime
	if s.RuntimeID == "" {
		s.RuntimeID = runtime.LocalRuntimeID
	}
	if s.Namespace == "" {
		s.Namespace = runtime.DefaultNamespace
	}
}
