// Package core provides the domain model for the finance tracker client:
// entity types mirroring the backend records, their validation rules, and the
// pure aggregation functions the dashboard charts are built from.
package core

import (
	"strconv"
	"strings"
)

// ParsePositiveAmount converts a form field to a strictly positive number.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Returns
// an error for empty input, non-numeric input, zero, negative values, or
// NaN/Inf encodings.
//
// Examples:
//
//	ParsePositiveAmount("12.34") -> 12.34, nil
//	ParsePositiveAmount("12,34") -> 12.34, nil
//	ParsePositiveAmount("-5")    -> 0, ErrInvalidAmount
func ParsePositiveAmount(s string) (float64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v != v || v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// ParsePositiveInt converts a form field to a strictly positive integer.
func ParsePositiveInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidTenure
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return 0, ErrInvalidTenure
	}
	return v, nil
}

// ParseDate converts an ISO "2006-01-02" form field to a Date.
func ParseDate(s string) (Date, error) {
	var d Date
	if err := d.UnmarshalJSON([]byte(`"` + strings.TrimSpace(s) + `"`)); err != nil {
		return Date{}, err
	}
	if err := d.Validate(); err != nil {
		return Date{}, err
	}
	return d, nil
}
