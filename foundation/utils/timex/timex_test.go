// File: timex_test.go
// Title: Epoch Conversion Tests
// Description: Tests for DateTime and the float epoch conversions, including
//              round trips through named and fixed zones.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package timex

import (
	"math"
	"testing"
	"time"
	_ "time/tzdata"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

var cet = time.FixedZone("CET", 3600)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := LoadLocation(name)
	if err != nil {
		t.Fatalf("LoadLocation(%q) error: %v", name, err)
	}
	return loc
}

// ===============================
// ToUnixFloat Tests
// ===============================

func TestToUnixFloat(t *testing.T) {
	testCases := []struct {
		name     string
		input    DateTime
		expected float64
	}{
		{"UTC epoch is zero", Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"aware CET applies offset", Date(1970, 1, 1, 2, 0, 0, 0, cet), 3600},
		{"aware CET keeps milliseconds", Date(1970, 1, 1, 2, 0, 0, 123000000, cet), 3600.123},
		{"naive is taken as UTC", Naive(1970, 1, 1, 2, 0, 0, 0), 7200},
		{"naive microseconds", Naive(1970, 1, 1, 0, 0, 1, 500), 1.0000005},
		{"before the epoch", Naive(1969, 12, 31, 23, 59, 59, 500000000), -0.5},
		{"contemporary", Date(2020, 10, 10, 15, 30, 0, 0, time.UTC), 1602343800},
		{"Epoch variable", Epoch, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := ToUnixFloat(tc.input)
			if result != tc.expected {
				t.Errorf("ToUnixFloat(%v) = %v, want %v", tc.input, result, tc.expected)
			}
		})
	}
}

func TestToUnixFloatNamedZone(t *testing.T) {
	berlin := mustLoad(t, "Europe/Berlin")

	// 1970 Berlin is UTC+1
	winter := Date(1970, 1, 1, 2, 0, 0, 0, berlin)
	if got := ToUnixFloat(winter); got != 3600 {
		t.Errorf("ToUnixFloat(winter) = %v, want 3600", got)
	}

	// summer time is UTC+2
	summer := Date(2020, 7, 1, 2, 0, 0, 0, berlin)
	want := ToUnixFloat(Naive(2020, 7, 1, 0, 0, 0, 0))
	if got := ToUnixFloat(summer); got != want {
		t.Errorf("ToUnixFloat(summer) = %v, want %v", got, want)
	}
}

// ===============================
// FromUnixFloat Tests
// ===============================

func TestFromUnixFloatNaive(t *testing.T) {
	result := FromUnixFloat(3600)

	if result.IsAware() {
		t.Fatal("FromUnixFloat without location must be naive")
	}
	if result.Location() != nil {
		t.Errorf("Location() = %v, want nil", result.Location())
	}
	if !result.Equal(Naive(1970, 1, 1, 1, 0, 0, 0)) {
		t.Errorf("FromUnixFloat(3600) = %v, want 1970-01-01T01:00:00", result)
	}
	if result.String() != "1970-01-01T01:00:00" {
		t.Errorf("String() = %q", result.String())
	}
}

func TestFromUnixFloatAware(t *testing.T) {
	result := FromUnixFloat(3600, cet)

	if !result.IsAware() {
		t.Fatal("FromUnixFloat with location must be aware")
	}
	if result.Location() != cet {
		t.Errorf("Location() = %v, want CET", result.Location())
	}
	if h := result.Time().Hour(); h != 2 {
		t.Errorf("hour in CET = %d, want 2", h)
	}
	if !result.Equal(Date(1970, 1, 1, 2, 0, 0, 0, cet)) {
		t.Errorf("FromUnixFloat(3600, CET) = %v", result)
	}
	if utc := result.In(time.UTC); !utc.Equal(Date(1970, 1, 1, 1, 0, 0, 0, time.UTC)) || utc.Time().Hour() != 1 {
		t.Errorf("In(UTC) = %v, want 01:00 UTC", utc)
	}
}

func TestFromUnixFloatNilLocationIsNaive(t *testing.T) {
	if FromUnixFloat(0, nil).IsAware() {
		t.Error("nil location must give a naive value")
	}
}

func TestFromUnixFloatFractions(t *testing.T) {
	testCases := []struct {
		name  string
		input float64
		want  DateTime
	}{
		{"half second before epoch", -0.5, Naive(1969, 12, 31, 23, 59, 59, 500000000)},
		{"milliseconds", 3600.123, Naive(1970, 1, 1, 1, 0, 0, 123000000)},
		{"microseconds", 1602343800.123456, Naive(2020, 10, 10, 15, 30, 0, 123456000)},
		{"rounds up to next second", 0.9999999, Naive(1970, 1, 1, 0, 0, 1, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := FromUnixFloat(tc.input)
			if !result.Equal(tc.want) {
				t.Errorf("FromUnixFloat(%v) = %v, want %v", tc.input, result, tc.want)
			}
		})
	}
}

func TestFromUnixFloatOutOfRange(t *testing.T) {
	testCases := []struct {
		name  string
		input float64
		want  DateTime
	}{
		{"far future", 1e19, Naive(9999, 12, 31, 23, 59, 59, 999999000)},
		{"huge", 1e300, Naive(9999, 12, 31, 23, 59, 59, 999999000)},
		{"far past", -1e19, Naive(1, 1, 1, 0, 0, 0, 0)},
		{"first representable", float64(MinUnixSeconds), Naive(1, 1, 1, 0, 0, 0, 0)},
		{"last whole second", float64(MaxUnixSeconds - 1), Naive(9999, 12, 31, 23, 59, 59, 0)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := FromUnixFloat(tc.input)
			if !result.Equal(tc.want) {
				t.Errorf("FromUnixFloat(%v) = %v, want %v", tc.input, result, tc.want)
			}
		})
	}
}

func TestCheckUnixFloat(t *testing.T) {
	testCases := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"epoch", 0, false},
		{"negative", -0.5, false},
		{"first representable", float64(MinUnixSeconds), false},
		{"last whole second", float64(MaxUnixSeconds - 1), false},
		{"end of range", float64(MaxUnixSeconds), true},
		{"before range", float64(MinUnixSeconds) - 1, true},
		{"far future", 1e19, true},
		{"far past", -1e19, true},
		{"huge", 1e300, true},
		{"NaN", math.NaN(), true},
		{"infinity", math.Inf(1), true},
		{"negative infinity", math.Inf(-1), true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckUnixFloat(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("CheckUnixFloat(%v) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err != nil && !cxerror.HasCode(err, cxerror.CodeInvalidArgument) {
				t.Errorf("expected INVALID_ARGUMENT, got %v", err)
			}
		})
	}
}

// ===============================
// Round Trip Tests
// ===============================

func TestRoundTripCalendar(t *testing.T) {
	zones := []*time.Location{
		time.UTC,
		cet,
		time.FixedZone("IST", 5*3600+1800),
		time.FixedZone("NST", -(3*3600 + 1800)),
		mustLoad(t, "Europe/Berlin"),
		mustLoad(t, "America/New_York"),
		mustLoad(t, "Asia/Tokyo"),
	}
	moments := []DateTime{
		Naive(1970, 1, 1, 0, 0, 0, 0),
		Naive(1969, 7, 20, 20, 17, 40, 0),
		Naive(2020, 10, 10, 15, 30, 0, 123456000),
		Naive(2021, 3, 28, 1, 30, 0, 0),
		Naive(2038, 1, 19, 3, 14, 8, 999999000),
	}

	for _, loc := range zones {
		for _, m := range moments {
			d := m.In(loc)
			t.Run(loc.String()+"/"+d.String(), func(t *testing.T) {
				back := FromUnixFloat(ToUnixFloat(d), d.Location())
				if !back.Equal(d) {
					t.Errorf("round trip = %v, want %v", back, d)
				}
				if back.Location() != d.Location() {
					t.Errorf("round trip location = %v, want %v", back.Location(), d.Location())
				}
				if back.String() != d.String() {
					t.Errorf("round trip wall clock = %s, want %s", back, d)
				}
			})
		}
	}
}

func TestRoundTripTimestamp(t *testing.T) {
	stamps := []float64{0, 3600, -0.5, -86400.25, 3600.123, 1602343800.5, 1602343800.123456}
	locs := []*time.Location{nil, time.UTC, cet, mustLoad(t, "America/New_York")}

	for _, ts := range stamps {
		for _, loc := range locs {
			if got := ToUnixFloat(FromUnixFloat(ts, loc)); got != ts {
				t.Errorf("ToUnixFloat(FromUnixFloat(%v, %v)) = %v", ts, loc, got)
			}
		}
	}
}

// ===============================
// DateTime Tests
// ===============================

func TestDateTimeNaiveAndIn(t *testing.T) {
	aware := Date(2020, 10, 10, 15, 30, 0, 0, cet)

	naive := aware.Naive()
	if naive.IsAware() {
		t.Error("Naive() must drop awareness")
	}
	if naive.Time().Hour() != 15 {
		t.Errorf("Naive() hour = %d, want 15 (wall clock kept)", naive.Time().Hour())
	}
	if ToUnixFloat(naive)-ToUnixFloat(aware) != 3600 {
		t.Error("dropping a +01:00 zone should move the instant one hour later")
	}

	if got := aware.In(nil); got.IsAware() || got.Time().Hour() != 14 {
		t.Errorf("In(nil) = %v, want naive 14:30", got)
	}
}

func TestDateTimeArithmetic(t *testing.T) {
	start := Date(2020, 10, 10, 15, 30, 0, 0, cet)
	later := start.Add(90 * time.Minute)

	if !later.IsAware() || later.Location() != cet {
		t.Error("Add() must keep awareness and location")
	}
	if later.Sub(start) != 90*time.Minute {
		t.Errorf("Sub() = %v", later.Sub(start))
	}
	if !start.Before(later) || !later.After(start) || start.Compare(later) != -1 {
		t.Error("ordering is inconsistent")
	}
	if OffsetSeconds(start, cet) != 3600 || OffsetSeconds(start, nil) != 0 {
		t.Error("OffsetSeconds() mismatch")
	}
	if ToUnix(Naive(1970, 1, 1, 0, 0, 1, 500000000)) != 1 || ToUnixMilli(Naive(1970, 1, 1, 0, 0, 1, 500000000)) != 1500 {
		t.Error("ToUnix/ToUnixMilli mismatch")
	}
}
