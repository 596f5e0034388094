package core

import (
	"runtime"
	"strings"
)

// Location identifies the source position a record was emitted from
type Location struct {
	File string
	Line int
}

// Here captures the location skip frames above the caller of Here;
// skip 0 reports the caller itself. When the stack cannot be resolved
// the file is reported as "???" with line 0.
func Here(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "???", Line: 0}
	}
	return Location{File: file, Line: line}
}

// ShortFile returns the text after the final '/' of the file path, or
// the whole path when it contains no '/'. The separator is a literal
// slash rather than the platform separator because runtime.Caller
// reports slash-separated paths on every platform.
func (l Location) ShortFile() string {
	if i := strings.LastIndexByte(l.File, '/'); i >= 0 {
		return l.File[i+1:]
	}
	return l.File
}
