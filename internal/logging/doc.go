// Package logging assembles the structured slog loggers used across myEPG.
//
// It owns the console and JSON handlers, centralizes level parsing and log
// file routing, and exposes standardized field keys so every component tags
// sources and runs the same way. The no-op logger backs tests and wiring code
// that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so all output shares
// one shape.
package logging
