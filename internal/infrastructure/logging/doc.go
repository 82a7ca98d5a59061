// Package logging provides structured logging for the relay.
//
// It wraps Go's standard log/slog package so every component logs with the
// same shape: JSON in production, text for local development, and the
// service and version fields on every entry.
//
// # Configuration
//
//	logging:
//	  level: "info"      # debug, info, warn, error
//	  format: "json"     # json, text
//	  output: "stdout"   # stdout, stderr
//
// # Usage
//
//	logger := logging.New(cfg.Logging, "1.0.0")
//	logger.Info("signal dispatched", "action", "all_off", "role", "admin")
//
// # Security
//
// Never log bearer tokens or the Govee API key. Log the token holder's role
// name instead.
package logging
