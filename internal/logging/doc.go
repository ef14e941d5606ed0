// Package logging builds the slog loggers used by the CLI.
//
// Two output formats are supported: a compact console format for interactive
// use and JSON for CI log collection. Console output is colorized only when
// the destination is a terminal.
package logging
