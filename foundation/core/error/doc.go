// Package error provides the structured, coded errors used across chronox.
//
// Package: error
// Title: chronox Error Handling
// Description: Errors carry a stable Code, a Severity derived from that code, the
//              operation that produced them, and free-form details. Callers branch
//              on codes (HasCode) instead of matching message text, which keeps
//              caller misuse (INVALID_ARGUMENT) apart from data problems.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Trimmed to the codes used by timex, objx, config and the CLI;
//                       added INVALID_ARGUMENT and INVALID_TIMEZONE
//
// Usage:
//
//	import cxerror "github.com/msto63/chronox/foundation/core/error"
//
//	err := cxerror.New("cannot search for an empty key").
//		WithCode(cxerror.CodeInvalidArgument).
//		WithOperation("objx.GetValueOrDefault").
//		WithDetail("position", 2)
//
//	if cxerror.HasCode(err, cxerror.CodeInvalidArgument) {
//		// caller bug, not missing data
//	}
package error
