//go:build js
// +build js

package common

import "github.com/gopherjs/gopherjs/js"

// writeLog forwards to the browser console.
func writeLog(level logLevel, args ...interface{}) {
	method := "log"
	switch level {
	case levelWarn:
		method = "warn"
	case levelError:
		method = "error"
	}
	js.Global.Get("console").Call(method, args...)
}
