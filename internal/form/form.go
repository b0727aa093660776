// Package form provides the permissive numeric coercion applied at
// every input boundary of the workflow. Missing or malformed values
// become 0.0 instead of errors; the calculation core never sees a
// validation failure.
package form

import (
	"net/url"
	"strconv"
	"strings"
)

// Float reads the named value and coerces it to a float64, returning
// 0.0 for absent, empty, or non-numeric input.
func Float(values url.Values, key string) float64 {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

// String reads the named value trimmed of surrounding whitespace.
func String(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
