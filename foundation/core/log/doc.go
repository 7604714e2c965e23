// Package log provides structured logging for mLaunch.
//
// Package: log
// Title: mLaunch Structured Logging
// Description: Structured logger with levels, persistent fields, request ids
//              and JSON, text or console output. Errors from the mdwerror
//              package are logged with their code and operation so a failed
//              resource reload can be traced back to the offset that broke it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-11-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-11-02 v0.2.0: Removed async buffering and user/correlation ids
//
// Usage:
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithRequestID(id)
//
//	logger.Info("shortcuts loaded", mdwlog.Int("count", n))
//
//	timer := logger.StartTimer("jsontok.Parse")
//	stream, err := jsontok.Parse(data)
//	timer.Stop()
package log
