/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package cobrau

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/voedger/xdrgen/pkg/logger"
)

func Test_PrepareRootCmd(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()

	var ran, preRan bool
	sub := &cobra.Command{
		Use: "sub",
		RunE: func(cmd *cobra.Command, args []string) error {
			ran = true
			require.True(LogFlagsChanged(cmd))
			return nil
		},
	}
	root := PrepareRootCmd("tool", "test tool", []string{"tool", "sub", "-v"}, "1.2.3",
		func(cmd *cobra.Command) error {
			preRan = true
			return nil
		}, sub)
	var logs bytes.Buffer
	root.SetErr(&logs)

	require.NoError(ExecCommandAndCatchInterrupt(root))
	require.Contains(logs.String(), "---: [cobrau.setLogLevelFromFlags:")
	require.Contains(logs.String(), "Using logger.LogLevelVerbose...")
	require.True(ran)
	require.True(preRan)
	require.True(logger.IsVerbose())
	require.False(logger.IsTrace())
}

func Test_Trace(t *testing.T) {
	require := require.New(t)
	defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()

	sub := &cobra.Command{Use: "sub", Run: func(*cobra.Command, []string) {}}
	root := PrepareRootCmd("tool", "", []string{"tool", "sub", "--trace"}, "", nil, sub)
	require.NoError(root.Execute())
	require.True(logger.IsTrace())
}

func Test_Version(t *testing.T) {
	require := require.New(t)

	root := PrepareRootCmd("tool", "", []string{"tool", "ver"}, "1.2.3", nil)
	var out bytes.Buffer
	root.SetOut(&out)
	require.NoError(root.Execute())
	require.Equal("tool version 1.2.3\n", out.String())
}

func Test_Errors(t *testing.T) {
	require := require.New(t)

	errTest := errors.New("test error")
	sub := &cobra.Command{Use: "sub", RunE: func(*cobra.Command, []string) error { return errTest }}
	root := PrepareRootCmd("tool", "", []string{"tool", "sub"}, "", nil, sub)
	require.ErrorIs(ExecCommandAndCatchInterrupt(root), errTest)

	root = PrepareRootCmd("tool", "", []string{"tool", "sub"}, "",
		func(*cobra.Command) error { return errTest },
		&cobra.Command{Use: "sub", Run: func(*cobra.Command, []string) {}})
	require.ErrorIs(root.Execute(), errTest)
}

func Test_ContextIsPassed(t *testing.T) {
	require := require.New(t)

	err := goAndCatchInterrupt(func(ctx context.Context) error {
		require.NoError(ctx.Err())
		return nil
	})
	require.NoError(err)
}
