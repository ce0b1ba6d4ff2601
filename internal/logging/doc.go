// Package logging provides structured logging for the ber/ldap codec
// and its command-line tools, backed by zap.
//
// # Overview
//
// The logging package provides a structured logging interface with support for:
//
//   - Multiple log levels (debug, info, warn, error)
//   - Text and JSON output formats
//   - Request ID tracking across a decode/encode call chain
//   - Field-based contextual logging
//
// # Creating a Logger
//
// Create a logger with configuration:
//
//	logger := logging.New(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	    Output: "stderr",
//	})
//
// Or use defaults:
//
//	logger := logging.NewDefault() // Info level, text format, stdout
//
// For testing, use a no-op logger:
//
//	logger := logging.NewNop()
//
// # Log Levels
//
// Four log levels are supported:
//
//	logger.Debug("detailed debugging info", "key", "value")
//	logger.Info("informational message", "key", "value")
//	logger.Warn("warning message", "key", "value")
//	logger.Error("error message", "key", "value")
//
// Parse level from string:
//
//	level := logging.ParseLevel("debug") // Returns LevelDebug
//
// # Structured Logging
//
// Add key-value pairs to log entries:
//
//	logger.Info("decoded message",
//	    "message_id", msg.MessageID,
//	    "operation", "BindRequest",
//	    "bytes", len(data),
//	)
//
// # Request ID Tracking
//
// Tag a logger with a request ID for a single decode/encode call:
//
//	requestID := logging.GenerateRequestID()
//	callLogger := logger.WithRequestID(requestID)
//
//	callLogger.Info("decoding message") // Includes request_id field
//
// # Contextual Fields
//
// Create loggers with persistent fields:
//
//	connLogger := logger.WithFields("client", conn.RemoteAddr().String())
//
//	// All subsequent logs include these fields
//	connLogger.Info("bind request received")
//	connLogger.Info("bind successful")
//
// # Output Destinations
//
// Configure output destination:
//
//	logging.Config{Output: "stdout"} // Standard output
//	logging.Config{Output: "stderr"} // Standard error
//	logging.Config{Output: "/var/log/oba-codec.log"} // File path
package logging
