// File: parse.go
// Title: Parsing
// Description: Parses calendar values and business-friendly durations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package timex

import (
	"strconv"
	"strings"
	"time"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Layouts whose inputs carry their own offset
var awareLayouts = []string{
	time.RFC3339Nano,
	ISO8601,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05 -0700",
	time.RFC1123Z,
}

// Layouts without offset information; fractional seconds are accepted
// after the seconds field
var naiveLayouts = []string{
	ISO8601DateTime,
	BusinessDateTime,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	ISO8601Date,
}

// ParseDateTime parses a calendar value. Inputs with an offset are aware in
// that offset. Inputs without one are naive, or aware in loc when loc is
// non-nil.
func ParseDateTime(value string, loc *time.Location) (DateTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DateTime{}, cxerror.New("empty time string").
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("timex.ParseDateTime")
	}

	for _, layout := range awareLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return NewDateTime(t), nil
		}
	}

	for _, layout := range naiveLayouts {
		t, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if loc != nil {
			return Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(),
				t.Second(), t.Nanosecond(), loc), nil
		}
		return NaiveOf(t), nil
	}

	return DateTime{}, cxerror.New("unable to parse time string").
		WithCode(cxerror.CodeInvalidFormat).
		WithOperation("timex.ParseDateTime").
		WithDetail("input", value)
}

// ParseDuration parses Go durations ("90m") and business phrases such as
// "1 day", "2 weeks" or "3 hours". Negative durations are rejected.
func ParseDuration(value string) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, cxerror.New("empty duration string").
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("timex.ParseDuration")
	}

	if strings.HasPrefix(value, "-") {
		return 0, cxerror.New("negative durations are not supported").
			WithCode(cxerror.CodeInvalidInput).
			WithOperation("timex.ParseDuration").
			WithDetail("input", value)
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	parts := strings.Fields(strings.ToLower(value))
	if len(parts) == 2 {
		if num, err := strconv.ParseFloat(parts[0], 64); err == nil {
			unit := strings.TrimSuffix(parts[1], "s")

			switch unit {
			case "second", "sec":
				return time.Duration(num * float64(time.Second)), nil
			case "minute", "min":
				return time.Duration(num * float64(time.Minute)), nil
			case "hour", "hr":
				return time.Duration(num * float64(time.Hour)), nil
			case "day":
				return time.Duration(num * float64(Day)), nil
			case "week":
				return time.Duration(num * float64(7*Day)), nil
			}
		}
	}

	return 0, cxerror.New("unable to parse duration string").
		WithCode(cxerror.CodeInvalidFormat).
		WithOperation("timex.ParseDuration").
		WithDetail("input", value)
}
