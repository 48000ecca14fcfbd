// Package log provides structured logging for chronox.
//
// Package: log
// Title: chronox Structured Logging
// Description: Leveled, structured logging with JSON and text output. Loggers are
//              immutable: every With* call returns a configured clone, so a logger
//              can be shared freely and specialised per command invocation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Removed async buffering, timers and audit level; kept JSON/text
//
// Usage:
//
//	import cxlog "github.com/msto63/chronox/foundation/core/log"
//
//	logger := cxlog.NewWithConfig(cxlog.Config{Level: cxlog.LevelDebug, Format: cxlog.FormatText}).
//		WithName("chronox").
//		WithRequestID(requestID)
//
//	logger.Debug("chunked range", cxlog.Int("chunks", n))
//	logger.LogError(err) // lifts code, operation and details out of *error.Error
package log
