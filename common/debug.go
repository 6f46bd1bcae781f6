package common

// EnableDebug gates Debug output. Warnings and errors are always written.
var EnableDebug = false

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		writeLog(levelDebug, args...)
	}
}

// DebugWarn logs a warning.
func DebugWarn(args ...interface{}) {
	writeLog(levelWarn, args...)
}

// DebugError logs an error.
func DebugError(args ...interface{}) {
	writeLog(levelError, args...)
}

type logLevel int

const (
	levelDebug logLevel = iota
	levelWarn
	levelError
)
