// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that renders either human readable
// console output (the default for an interactive CLI) or JSON lines for
// collection by a log pipeline.
//
// # Run Correlation
//
// Every invocation of the report gets a run ID. WithRunID attaches it to the
// logger so that all entries of one run, and the uploaded report object, can be
// correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: console or json
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log, runID)
//	log.Info("Collecting buckets")
package logger
