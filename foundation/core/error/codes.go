// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes shared by the chronox packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Reduced to utility and CLI codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Caller misuse: the arguments themselves are malformed
	CodeInvalidArgument Code = "INVALID_ARGUMENT"

	// Input data that could not be interpreted
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeInvalidTimezone Code = "INVALID_TIMEZONE"

	// Configuration
	CodeConfigError Code = "CONFIG_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the known codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidArgument,
		CodeInvalidInput, CodeInvalidFormat, CodeInvalidTimezone, CodeConfigError:
		return true
	}
	return false
}

// IsClientError reports whether the code describes a problem with what the
// caller passed in rather than with the system
func (c Code) IsClientError() bool {
	switch c {
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat,
		CodeInvalidTimezone, CodeNotFound:
		return true
	}
	return false
}
