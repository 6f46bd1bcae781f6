//go:build !js
// +build !js

package common

import (
	"io"
	"log"
	"os"
	"sync"
)

var (
	logMu  sync.Mutex
	logger = log.New(os.Stderr, "", log.LstdFlags)
)

// SetLogOutput redirects native debug output, e.g. away from a terminal UI.
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logger.SetOutput(w)
}

func writeLog(level logLevel, args ...interface{}) {
	prefix := "debug:"
	switch level {
	case levelWarn:
		prefix = "warn:"
	case levelError:
		prefix = "error:"
	}
	logMu.Lock()
	defer logMu.Unlock()
	logger.Println(append([]interface{}{prefix}, args...)...)
}
