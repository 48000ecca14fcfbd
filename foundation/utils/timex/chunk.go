// File: chunk.go
// Title: Interval and Range Chunking
// Description: Implements the Interval value and the single-pass RangeChunker
//              that splits a range into consecutive bounded sub-intervals.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"fmt"
	"iter"
	"time"

	cxerror "github.com/msto63/chronox/foundation/core/error"
)

// Interval is the half-open range [Start, End)
type Interval struct {
	Start DateTime
	End   DateTime
}

// Duration returns the length of the interval
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Contains reports whether d lies in [Start, End)
func (iv Interval) Contains(d DateTime) bool {
	return !d.Before(iv.Start) && d.Before(iv.End)
}

// Overlaps reports whether the two half-open intervals share any instant
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start.Before(other.End) && other.Start.Before(iv.End)
}

// String returns a string representation of the interval
func (iv Interval) String() string {
	return fmt.Sprintf("%s - %s", iv.Start, iv.End)
}

// RangeChunker lazily yields consecutive chunks of a range. It is single-pass
// and must not be shared between consumers.
type RangeChunker struct {
	next     DateTime
	end      DateTime
	interval time.Duration
	current  Interval
	done     bool
	err      error
}

// ChunkRange splits [start, end) into chunks of interval (default Day).
// Every chunk but the last is exactly interval long; the last ends at end.
// If end is not after start the sequence is empty. A non-positive interval
// yields nothing and sets Err.
func ChunkRange(start, end DateTime, interval ...time.Duration) *RangeChunker {
	step := Day
	if len(interval) > 0 {
		step = interval[0]
	}

	c := &RangeChunker{next: start, end: end, interval: step}
	switch {
	case !end.After(start):
		c.done = true
	case step <= 0:
		c.done = true
		c.err = cxerror.New("chunk interval must be positive").
			WithCode(cxerror.CodeInvalidArgument).
			WithOperation("timex.ChunkRange").
			WithDetail("interval", step.String())
	}
	return c
}

// Next advances to the next chunk and reports whether there is one
func (c *RangeChunker) Next() bool {
	if c.done {
		return false
	}

	chunkEnd := c.next.Add(c.interval)
	if !chunkEnd.Before(c.end) {
		chunkEnd = c.end
		c.done = true
	}

	c.current = Interval{Start: c.next, End: chunkEnd}
	c.next = chunkEnd
	return true
}

// Chunk returns the chunk produced by the last successful Next
func (c *RangeChunker) Chunk() Interval {
	return c.current
}

// Err returns the usage error that stopped the chunker, if any
func (c *RangeChunker) Err() error {
	return c.err
}

// All drains the chunker as an iterator. It shares the chunker's position, so
// ranging over it a second time yields nothing.
func (c *RangeChunker) All() iter.Seq[Interval] {
	return func(yield func(Interval) bool) {
		for c.Next() {
			if !yield(c.current) {
				return
			}
		}
	}
}
