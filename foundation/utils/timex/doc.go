// Package timex converts between calendar values and float epoch timestamps and
// splits time ranges into bounded chunks.
//
// Package: timex
// Title: Epoch and Range Utilities
// Description: DateTime models a calendar value that is either aware (carries a
//              *time.Location) or naive (no zone; read as UTC at every boundary,
//              never as local time). ToUnixFloat and FromUnixFloat convert to and
//              from float seconds since the Unix epoch, and ChunkRange lazily
//              yields consecutive sub-intervals of a range.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time operations
// - 2026-10-19 v0.2.0: Reworked around naive/aware DateTime, float epoch conversion
//                       and the lazy range chunker
//
// # Epoch conversion
//
// A point two hours into the epoch day in a UTC+1 zone is one hour past the epoch:
//
//	cet := time.FixedZone("CET", 3600)
//	timex.ToUnixFloat(timex.Date(1970, 1, 1, 2, 0, 0, 0, cet)) // 3600
//
// A naive value is taken as UTC, so the same wall clock gives two hours:
//
//	timex.ToUnixFloat(timex.Naive(1970, 1, 1, 2, 0, 0, 0)) // 7200
//
// FromUnixFloat goes the other way. Without a location the result is naive;
// with one it is aware and denotes the same instant:
//
//	timex.FromUnixFloat(3600)      // 1970-01-01T01:00:00 (naive)
//	timex.FromUnixFloat(3600, cet) // 1970-01-01T02:00:00+01:00
//
// Float seconds cannot hold nanoseconds for contemporary dates, so FromUnixFloat
// rounds to the nearest microsecond (half to even).
//
// # Range chunking
//
// ChunkRange is a single-pass producer in the style of bufio.Scanner:
//
//	c := timex.ChunkRange(start, end, 6*time.Hour)
//	for c.Next() {
//		chunk := c.Chunk()
//		...
//	}
//	if err := c.Err(); err != nil {
//		...
//	}
//
// An empty or inverted range yields nothing. A non-positive interval yields
// nothing and Err reports INVALID_ARGUMENT.
//
// # Timezones
//
// Named zones come from the IANA database through LoadLocation, which caches
// loaded locations. Programs that must run without system tzdata should import
// time/tzdata.
package timex
