// Package error provides structured error handling for mLaunch.
//
// Package: error
// Title: mLaunch Error Handling
// Description: Structured errors with codes, severities, operation context and
//              details. Parsing and configuration failures are reported as
//              *Error values so callers can branch on the code instead of the
//              message text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-11-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-11-02 v0.2.0: Trimmed to launcher codes, added MALFORMED_INPUT
//
// Usage:
//
//	err := mdwerror.New("unterminated string").
//		WithCode(mdwerror.CodeMalformedInput).
//		WithOperation("jsontok.Parse").
//		WithDetail("offset", 17)
//
//	if mdwerror.HasCode(err, mdwerror.CodeMalformedInput) {
//		// keep the previous table
//	}
package error
