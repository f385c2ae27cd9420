// Package utils provides utility functions for the Cellery observability datasource
package utils

import (
	"regexp"

	"cellery-observability-datasource/pkg/constant"
)

var (
	relativeTimeRegex = regexp.MustCompile(constant.RelativeTimePattern)
	timeRegex         = regexp.MustCompile(constant.TimePattern)
)

// TimeToken is one quantity/unit pair of a relative time expression, exactly as
// the user typed it (e.g. "5" and "minutes").
type TimeToken struct {
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

// IsRelativeTime checks if expr is a relative time expression such as "now",
// "now - 5 minutes" or "now-1day-2hours"
func IsRelativeTime(expr string) bool {
	return relativeTimeRegex.MatchString(expr)
}

// RelativeTimeTokens splits a relative time expression into its time tokens.
// ok is false when expr is not a relative time expression; "now" on its own
// yields no tokens.
func RelativeTimeTokens(expr string) (tokens []TimeToken, ok bool) {
	if !IsRelativeTime(expr) {
		return nil, false
	}

	matches := timeRegex.FindAllStringSubmatch(expr, -1)
	tokens = make([]TimeToken, 0, len(matches))
	for _, match := range matches {
		tokens = append(tokens, TimeToken{Quantity: match[1], Unit: match[2]})
	}
	return tokens, true
}
