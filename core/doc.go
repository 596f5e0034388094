// Package core defines the shared types used across the tracelog module.
//
// It provides the Level type with its one-character display codes, the
// Format type that selects between the two prefix layouts, and the
// Location type that carries the source position a record was emitted
// from. ParseLevel and ParseFormat convert the configuration names used
// by external glue (flags, config files) into their typed values.
//
// Levels follow the trace-record convention: ERROR is 0, WARNING is 1,
// INFO is 2, and any numerically higher value is treated as INFO for
// display purposes. The process id is resolved once at startup and
// served from a cached value via PID.
package core
