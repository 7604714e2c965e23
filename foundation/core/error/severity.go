// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level an error is reported at.
// Author: msto63
// Version: v0.1.0
// Created: 2025-01-24
// Modified: 2025-01-24

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error such as invalid user input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround, e.g. keeping a previous table
	SeverityMedium

	// SeverityHigh indicates that the requested operation could not be carried out
	SeverityHigh

	// SeverityCritical indicates that the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should be surfaced to the user
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}
