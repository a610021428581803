package stfl

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// debugLog is a mutex-guarded, env-gated sink for tree mutation and
// focus transition tracing, appended to stfl.log in the working
// directory. Enabled by STFL_DEBUG_LOG holding a truthy value when the
// package is initialized; the variable is read only once, at init.
type debugLog struct {
	file    *os.File
	mu      sync.Mutex
	enabled bool
}

var globalLog *debugLog

func init() {
	if !boolEnv("STFL_DEBUG_LOG") {
		return
	}
	f, err := os.OpenFile("stfl.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return
	}
	globalLog = &debugLog{file: f, enabled: true}
}

func boolEnv(name string) bool {
	v := os.Getenv(name)
	return v != "" && v != "0" && v != "false" && v != "no"
}

// Log writes a timestamped debug line when STFL_DEBUG_LOG is set; it
// is a no-op otherwise, so the hot path (cascade lookups, layout)
// pays nothing for it.
func Log(format string, args ...any) {
	if globalLog == nil || !globalLog.enabled {
		return
	}
	globalLog.mu.Lock()
	defer globalLog.mu.Unlock()
	ts := time.Now().Format("15:04:05.000")
	fmt.Fprintf(globalLog.file, "[%s] %s\n", ts, fmt.Sprintf(format, args...))
}
