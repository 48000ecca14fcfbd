// File: timex.go
// Title: Calendar Values and Epoch Conversion
// Description: Implements the naive/aware DateTime value and conversion between
//              DateTime and float seconds since the Unix epoch.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2026-10-19 v0.2.0: DateTime, ToUnixFloat and FromUnixFloat
// - 2026-10-19 v0.2.1: FromUnixFloat clamps to years 0001-9999, CheckUnixFloat

package timex

import (
	"math"
	"math/big"
	"time"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Common layouts
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDateTime = "2006-01-02 15:04:05"

	// naiveLayout renders naive values with optional fraction
	naiveLayout = "2006-01-02T15:04:05.999999999"
)

// Day is the default chunk interval
const Day = 24 * time.Hour

// Epoch is the Unix epoch as an aware UTC value
var Epoch = NewDateTime(time.Unix(0, 0).UTC())

var nanosPerSecond = big.NewInt(int64(time.Second))

// Representable timestamp range: 0001-01-01T00:00:00 up to, but excluding,
// 10000-01-01T00:00:00.
const (
	MinUnixSeconds int64 = -62135596800
	MaxUnixSeconds int64 = 253402300800
)

// DateTime is a calendar value that is either aware (bound to a location) or
// naive (no location). Naive values keep their wall clock in UTC so every
// computation treats them as UTC.
type DateTime struct {
	t     time.Time
	aware bool
}

// NewDateTime returns an aware DateTime for t in t's location
func NewDateTime(t time.Time) DateTime {
	return DateTime{t: t, aware: true}
}

// NaiveOf drops t's location and keeps its wall clock
func NaiveOf(t time.Time) DateTime {
	return DateTime{t: time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(),
		t.Second(), t.Nanosecond(), time.UTC)}
}

// Naive returns a naive DateTime with the given wall clock
func Naive(year int, month time.Month, day, hour, min, sec, nsec int) DateTime {
	return DateTime{t: time.Date(year, month, day, hour, min, sec, nsec, time.UTC)}
}

// Date returns an aware DateTime in loc, or a naive one when loc is nil
func Date(year int, month time.Month, day, hour, min, sec, nsec int, loc *time.Location) DateTime {
	if loc == nil {
		return Naive(year, month, day, hour, min, sec, nsec)
	}
	return NewDateTime(time.Date(year, month, day, hour, min, sec, nsec, loc))
}

// IsAware reports whether d carries a location
func (d DateTime) IsAware() bool {
	return d.aware
}

// Location returns d's location, or nil for naive values
func (d DateTime) Location() *time.Location {
	if !d.aware {
		return nil
	}
	return d.t.Location()
}

// Time returns d as a time.Time; naive values come back in UTC
func (d DateTime) Time() time.Time {
	return d.t
}

// IsZero reports whether d is the zero DateTime
func (d DateTime) IsZero() bool {
	return d.t.IsZero()
}

// Add returns d+dur, keeping awareness and location
func (d DateTime) Add(dur time.Duration) DateTime {
	return DateTime{t: d.t.Add(dur), aware: d.aware}
}

// Sub returns d-o
func (d DateTime) Sub(o DateTime) time.Duration {
	return d.t.Sub(o.t)
}

// Equal reports whether d and o denote the same instant
func (d DateTime) Equal(o DateTime) bool {
	return d.t.Equal(o.t)
}

// Before reports whether d is before o
func (d DateTime) Before(o DateTime) bool {
	return d.t.Before(o.t)
}

// After reports whether d is after o
func (d DateTime) After(o DateTime) bool {
	return d.t.After(o.t)
}

// Compare returns -1, 0 or +1 like time.Time.Compare
func (d DateTime) Compare(o DateTime) int {
	return d.t.Compare(o.t)
}

// In returns the same instant as an aware value in loc.
// A nil loc returns the naive UTC rendering.
func (d DateTime) In(loc *time.Location) DateTime {
	if loc == nil {
		return DateTime{t: d.t.UTC()}
	}
	return NewDateTime(d.t.In(loc))
}

// Naive drops the location and keeps the wall clock
func (d DateTime) Naive() DateTime {
	if !d.aware {
		return d
	}
	return NaiveOf(d.t)
}

// Format formats d with a time layout. Zone verbs render as UTC for naive values.
func (d DateTime) Format(layout string) string {
	return d.t.Format(layout)
}

// String renders aware values as RFC3339 and naive values without an offset
func (d DateTime) String() string {
	if d.aware {
		return d.t.Format(time.RFC3339Nano)
	}
	return d.t.Format(naiveLayout)
}

// ToUnixFloat returns the seconds elapsed from the UTC epoch to d.
//
// Aware values account for their zone offset; naive values are taken as UTC
// with no adjustment. The result is the float64 nearest to the exact
// nanosecond count, so sub-second components surface as decimal fractions.
func ToUnixFloat(d DateTime) float64 {
	nanos := new(big.Int).Mul(big.NewInt(d.t.Unix()), nanosPerSecond)
	nanos.Add(nanos, big.NewInt(int64(d.t.Nanosecond())))

	f, _ := new(big.Rat).SetFrac(nanos, nanosPerSecond).Float64()
	return f
}

// FromUnixFloat returns the calendar value ts seconds after the UTC epoch.
//
// With a non-nil loc the result is aware and expressed in loc; otherwise it is
// naive and shows the UTC wall clock. The fraction is rounded to the nearest
// microsecond.
//
// Timestamps outside [MinUnixSeconds, MaxUnixSeconds) are clamped to the first
// or last representable microsecond; use CheckUnixFloat to reject them instead.
func FromUnixFloat(ts float64, loc ...*time.Location) DateTime {
	sec := math.Floor(ts)
	micros := math.RoundToEven((ts - sec) * 1e6)
	if micros >= 1e6 {
		sec++
		micros -= 1e6
	}

	switch {
	case sec < float64(MinUnixSeconds):
		sec, micros = float64(MinUnixSeconds), 0
	case sec >= float64(MaxUnixSeconds):
		sec, micros = float64(MaxUnixSeconds-1), 999999
	}

	t := time.Unix(int64(sec), int64(micros)*int64(time.Microsecond))
	if len(loc) > 0 && loc[0] != nil {
		return NewDateTime(t.In(loc[0]))
	}
	return DateTime{t: t.UTC()}
}

// CheckUnixFloat reports an INVALID_ARGUMENT error when ts is NaN, infinite
// or outside the representable range.
func CheckUnixFloat(ts float64) error {
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return cxerror.New("timestamp must be finite").
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("timex.CheckUnixFloat").
			WithDetail("timestamp", ts)
	}
	if ts < float64(MinUnixSeconds) || ts >= float64(MaxUnixSeconds) {
		return cxerror.Newf("timestamp %v is outside years 0001-9999", ts).
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("timex.CheckUnixFloat").
			WithDetail("timestamp", ts)
	}
	return nil
}

// ToUnix returns the whole seconds since the epoch for d
func ToUnix(d DateTime) int64 {
	return d.t.Unix()
}

// ToUnixMilli returns the milliseconds since the epoch for d
func ToUnixMilli(d DateTime) int64 {
	return d.t.UnixMilli()
}
