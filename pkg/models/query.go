package models

import (
	"encoding/json"
	"fmt"
)

// Query types understood by the datasource.
const (
	QueryTypeConstants    = "constants"
	QueryTypeRelativeTime = "relativeTime"
	QueryTypeClassify     = "classify"
)

// QueryModel represents the structure of a single query sent from Grafana.
// This struct will be unmarshaled from the JSON data in backend.DataQuery.
type QueryModel struct {
	QueryType  string `json:"queryType"`
	Group      string `json:"group"`      // Optional, restricts a constants query to one top-level group
	Expression string `json:"expression"` // Relative time expression or component name
}

// LoadQueryModel unmarshals the query JSON. An empty query type means a
// constants query.
func LoadQueryModel(raw []byte) (*QueryModel, error) {
	qm := QueryModel{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &qm); err != nil {
			return nil, fmt.Errorf("error parsing query JSON: %w", err)
		}
	}
	if qm.QueryType == "" {
		qm.QueryType = QueryTypeConstants
	}
	return &qm, nil
}
