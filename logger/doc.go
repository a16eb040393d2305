// Package logger provides structured logging for endpointkit using zerolog.
//
// It supports JSON and console output, level configuration and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.WithComponent("endpoint")
//	log.Debug("url built", logger.Fields(logger.FieldURL, u.String()))
package logger
