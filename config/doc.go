// Package config loads Logger settings from YAML or TOML files and
// applies them.
//
// A config file mirrors the Logger's runtime switches:
//
//	error: true
//	warning: true
//	info: true
//	verbose: 2
//	format: ISO8601
//	file: /var/log/trace.log
//
// Load picks the parser from the file extension, MergeEnv layers
// TRACELOG_* environment overrides on top and Apply pushes the result
// into a Logger. Watch keeps a file under observation with fsnotify
// and re-reads it on every change.
package config
