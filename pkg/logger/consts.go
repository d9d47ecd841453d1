/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package logger

const (
	errorPrefix   = "*****"
	warningPrefix = "!!!"
	infoPrefix    = "==="
	verbosePrefix = "---"
	tracePrefix   = "..."
)

const (
	// frames between print and the caller of Error, Info etc.
	callerSkipFrames = 3
	timeLayout       = "01/02 15:04:05.000"
)

var levelNames = map[string]TLogLevel{
	"none":    LogLevelNone,
	"error":   LogLevelError,
	"warning": LogLevelWarning,
	"info":    LogLevelInfo,
	"verbose": LogLevelVerbose,
	"trace":   LogLevelTrace,
}
