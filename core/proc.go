package core

import "os"

// pid is resolved once at startup. Looking it up is a syscall on most
// platforms and the value cannot change for the life of the process.
var pid = os.Getpid()

// PID returns the cached identifier of the current process.
func PID() int { return pid }
