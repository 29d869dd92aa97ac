// Package logger provides structured logging based on Zap.
//
// It builds a configured logger instance for either development (console) or
// production (json) use and integrates with the Fiber web framework.
//
// # Request Correlation
//
// The WithRayID helper extracts the RayID (request id) from a Fiber context and
// attaches it to the log entry, so that all log lines produced while serving a
// single report request can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
