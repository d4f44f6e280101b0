// Package logging assembles the structured slog loggers used across
// mediasort.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so the run identifier shows up on
// every log line. A no-op logger is provided for tests and wiring code that
// cannot fail.
package logging
