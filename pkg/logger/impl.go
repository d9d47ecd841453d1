/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

var ErrUnknownLogLevel = errors.New("unknown log level")

type logPrinter struct {
	logLevel TLogLevel

	mu  sync.Mutex
	out io.Writer
}

var globalLogPrinter = logPrinter{logLevel: LogLevelInfo}

func isEnabled(logLevel TLogLevel) bool {
	return TLogLevel(atomic.LoadInt32((*int32)(&globalLogPrinter.logLevel))) >= logLevel
}

func printIfLevel(logLevel TLogLevel, args ...interface{}) {
	if isEnabled(logLevel) {
		globalLogPrinter.print(logLevel, args...)
	}
}

func getLevelPrefix(level TLogLevel) string {
	switch level {
	case LogLevelError:
		return errorPrefix
	case LogLevelWarning:
		return warningPrefix
	case LogLevelInfo:
		return infoPrefix
	case LogLevelVerbose:
		return verbosePrefix
	case LogLevelTrace:
		return tracePrefix
	}
	return ""
}

// callerOf returns the short name (package.func) and line of the function
// skipFrames above the caller
func callerOf(skipFrames int) (funcName string, line int) {
	pc, _, line, ok := runtime.Caller(skipFrames + 1)
	if !ok {
		return "", 0
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "", line
	}
	funcName = fn.Name()
	if i := strings.LastIndex(funcName, "/"); i >= 0 {
		funcName = funcName[i+1:]
	}
	return funcName, line
}

func formatLine(now time.Time, prefix string, funcName string, line int, args ...interface{}) string {
	var b strings.Builder
	b.WriteString(now.Format(timeLayout))
	b.WriteString(": ")
	b.WriteString(prefix)
	fmt.Fprintf(&b, ": [%s:%d]:", funcName, line)
	for _, arg := range args {
		b.WriteByte(' ')
		fmt.Fprint(&b, arg)
	}
	b.WriteByte('\n')
	return b.String()
}

func (p *logPrinter) setOutput(w io.Writer) (old io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	old, p.out = p.out, w
	return old
}

func (p *logPrinter) print(level TLogLevel, args ...interface{}) {
	funcName, line := callerOf(callerSkipFrames)
	msg := formatLine(time.Now(), getLevelPrefix(level), funcName, line, args...)

	p.mu.Lock()
	defer p.mu.Unlock()
	out := p.out
	if out == nil {
		out = os.Stderr
	}
	_, _ = io.WriteString(out, msg)
}
