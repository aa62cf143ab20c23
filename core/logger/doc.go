// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports development and
// production encodings and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the RayID set by the rayid middleware from a
// Fiber context and attaches it to the log entry, so every line logged while
// handling a request can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error (LOG_LEVEL)
//   - Format: json or console (LOG_FORMAT)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Greeting server listening")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
