// Package cli implements the tracelog command line tool.
//
// Two subcommands cover the operator workflow: check validates a
// config file and reports the effective settings, emit pushes sample
// records through a configured logger so the sink and prefix layout
// can be verified end to end.
package cli
