// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across mLaunch so that callers can
//              classify failures without inspecting messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-11-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-11-02 v0.2.0: Reduced to launcher codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Parsing
	CodeMalformedInput Code = "MALFORMED_INPUT"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
	CodeMissingConfig Code = "MISSING_CONFIG"

	// Launch
	CodeExternalServiceError Code = "EXTERNAL_SERVICE_ERROR"
	CodePermissionDenied     Code = "PERMISSION_DENIED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// DefaultSeverity returns the severity an error with this code gets unless set explicitly
func (c Code) DefaultSeverity() Severity {
	switch c {
	case CodeNotFound, CodeInvalidInput:
		return SeverityLow
	case CodeMalformedInput, CodeConfigError, CodeInvalidConfig, CodeMissingConfig:
		return SeverityMedium
	case CodeExternalServiceError, CodePermissionDenied, CodeInternal:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}
