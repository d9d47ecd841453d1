/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

// Package logger is a level-gated line logger. Lines are formatted as
//
//	time: prefix: [func:line]: args
//
// and go to stderr unless SetOutput says otherwise: stdout of the compiler
// carries generated code.
package logger

import (
	"fmt"
	"io"
	"sync/atomic"
)

// TLogLevel s.e.
type TLogLevel int32

// Log Levels enum
const (
	LogLevelNone = TLogLevel(iota)
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelVerbose // aka Debug
	LogLevelTrace
)

func (l TLogLevel) String() string {
	for name, level := range levelNames {
		if level == l {
			return name
		}
	}
	return fmt.Sprintf("TLogLevel(%d)", int32(l))
}

func SetLogLevel(logLevel TLogLevel) (old TLogLevel) {
	return TLogLevel(atomic.SwapInt32((*int32)(&globalLogPrinter.logLevel), int32(logLevel)))
}

// SetLogLevelWithRestore is used by tests: defer logger.SetLogLevelWithRestore(level)()
func SetLogLevelWithRestore(logLevel TLogLevel) (restore func()) {
	old := SetLogLevel(logLevel)
	return func() {
		SetLogLevel(old)
	}
}

// ParseLogLevel converts a level name (none, error, warning, info, verbose,
// trace) to TLogLevel
func ParseLogLevel(name string) (TLogLevel, error) {
	if level, ok := levelNames[name]; ok {
		return level, nil
	}
	return LogLevelNone, fmt.Errorf("%w: %q", ErrUnknownLogLevel, name)
}

// SetOutput redirects log lines to w. nil restores stderr
func SetOutput(w io.Writer) (restore func()) {
	old := globalLogPrinter.setOutput(w)
	return func() {
		globalLogPrinter.setOutput(old)
	}
}

func Error(args ...interface{}) {
	printIfLevel(LogLevelError, args...)
}

func Warning(args ...interface{}) {
	printIfLevel(LogLevelWarning, args...)
}

func Info(args ...interface{}) {
	printIfLevel(LogLevelInfo, args...)
}

func Verbose(args ...interface{}) {
	printIfLevel(LogLevelVerbose, args...)
}

// Verbosef formats only if verbose output is enabled
func Verbosef(format string, args ...interface{}) {
	if isEnabled(LogLevelVerbose) {
		printIfLevel(LogLevelVerbose, fmt.Sprintf(format, args...))
	}
}

func Trace(args ...interface{}) {
	printIfLevel(LogLevelTrace, args...)
}

func IsError() bool {
	return isEnabled(LogLevelError)
}

func IsWarning() bool {
	return isEnabled(LogLevelWarning)
}

func IsInfo() bool {
	return isEnabled(LogLevelInfo)
}

func IsVerbose() bool {
	return isEnabled(LogLevelVerbose)
}

func IsTrace() bool {
	return isEnabled(LogLevelTrace)
}
