// File: location.go
// Title: Timezone Lookup
// Description: Cached lookup of named IANA timezones.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package timex

import (
	"strings"
	"sync"
	"time"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Timezone cache for commonly used locations
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// LoadLocation returns the named location, loading it at most once.
// "UTC" and "Local" resolve without touching the timezone database.
func LoadLocation(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, cxerror.New("timezone name cannot be empty").
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("timex.LoadLocation")
	}

	timezoneMu.RLock()
	loc, ok := timezoneCache[name]
	timezoneMu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, cxerror.Wrap(err, "unknown timezone").
			WithCode(cxerror.CodeInvalidTimezone).
			WithOperation("timex.LoadLocation").
			WithDetail("timezone", name)
	}

	timezoneMu.Lock()
	timezoneCache[name] = loc
	timezoneMu.Unlock()

	return loc, nil
}

// OffsetSeconds returns the UTC offset of loc at the instant d
func OffsetSeconds(d DateTime, loc *time.Location) int {
	if loc == nil {
		return 0
	}
	_, offset := d.Time().In(loc).Zone()
	return offset
}
