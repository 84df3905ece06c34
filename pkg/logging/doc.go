// Package logging provides structured logging configuration for dx.
//
// It wraps log/slog with a small Config type so the CLI layers agree on
// levels, formats, and the optional log file. Components take a
// *slog.Logger in their constructor; use logging.Nop() when output is
// unwanted.
package logging
