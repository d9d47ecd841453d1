/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package logger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_FormatLine(t *testing.T) {
	require := require.New(t)

	now := time.Date(2024, 3, 1, 10, 20, 30, 400_000_000, time.UTC)

	out := formatLine(now, "", "parser.buildImpl", 120, "line1")
	require.Equal("03/01 10:20:30.400: : [parser.buildImpl:120]: line1\n", out)

	out = formatLine(now, infoPrefix, "", 121, "line1", "line2", 3)
	require.Equal("03/01 10:20:30.400: ===: [:121]: line1 line2 3\n", out)
}

func Test_CheckRightPrefix(t *testing.T) {
	require := require.New(t)

	require.Equal(errorPrefix, getLevelPrefix(LogLevelError))
	require.Equal(warningPrefix, getLevelPrefix(LogLevelWarning))
	require.Equal(infoPrefix, getLevelPrefix(LogLevelInfo))
	require.Equal(verbosePrefix, getLevelPrefix(LogLevelVerbose))
	require.Equal(tracePrefix, getLevelPrefix(LogLevelTrace))
	require.Empty(getLevelPrefix(7))
}

func lines(buf *bytes.Buffer) []string {
	s := strings.TrimSuffix(buf.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func Test_Levels(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	defer SetOutput(&buf)()
	defer SetLogLevelWithRestore(LogLevelInfo)()

	Error("e")
	Warning("w")
	Info("i")
	Verbose("v")
	Verbosef("%d", 1)
	Trace("t")
	require.Len(lines(&buf), 3)
	require.True(IsInfo())
	require.False(IsVerbose())

	buf.Reset()
	SetLogLevel(LogLevelTrace)
	Verbose("v")
	Verbosef("%d files", 2)
	Trace("t")
	l := lines(&buf)
	require.Len(l, 3)
	require.True(IsTrace())
	require.Contains(l[0], "---: [logger.Test_Levels:")
	require.Contains(l[1], "---: [logger.Test_Levels:")
	require.True(strings.HasSuffix(l[1], "]: 2 files"))
	require.True(strings.HasSuffix(l[2], "]: t"))

	buf.Reset()
	SetLogLevel(LogLevelNone)
	Error("e")
	require.Empty(lines(&buf))
	require.False(IsError())
}

func Test_SetOutput(t *testing.T) {
	require := require.New(t)

	defer SetLogLevelWithRestore(LogLevelInfo)()

	var first, second bytes.Buffer
	restoreFirst := SetOutput(&first)
	restoreSecond := SetOutput(&second)
	Info("to second")
	restoreSecond()
	Info("to first")
	restoreFirst()

	require.Contains(first.String(), "to first")
	require.NotContains(first.String(), "to second")
	require.Contains(second.String(), "to second")
	require.Nil(globalLogPrinter.out)
}

func Test_ParseLogLevel(t *testing.T) {
	require := require.New(t)

	for name, level := range levelNames {
		l, err := ParseLogLevel(name)
		require.NoError(err)
		require.Equal(level, l)
		require.Equal(name, level.String())
	}
	require.Equal("TLogLevel(9)", TLogLevel(9).String())

	_, err := ParseLogLevel("loud")
	require.ErrorIs(err, ErrUnknownLogLevel)
}

func Test_CallerOf(t *testing.T) {
	funcName, line := callerOf(0)
	require.Equal(t, "logger.Test_CallerOf", funcName)
	require.Greater(t, line, 0)
}
