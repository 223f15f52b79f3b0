// Package logging builds the slog loggers used across wabbex.
//
// It offers a console handler tuned for interactive runs and a JSON handler
// for machine consumption, plus small attribute helpers so call sites stay
// terse.
package logging
