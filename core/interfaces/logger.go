package interfaces

// Logger defines the interface for structured logging throughout the
// application. The abstraction allows different backends (logrus, zap, etc.)
// behind a consistent call shape.
//
// Example usage:
//
//	logger.Info("SERP batch complete", map[string]interface{}{
//		"queries": 4,
//		"docs":    87,
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
