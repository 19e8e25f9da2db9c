// Package logging assembles structured slog loggers used across plagcheck.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so pipeline code automatically tags
// log lines with the run identifier and the document role being processed.
// The package also provides a no-op logger for tests and wiring code that
// cannot fail.
package logging
