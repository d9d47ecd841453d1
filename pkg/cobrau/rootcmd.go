/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

// Package cobrau builds cobra root commands with the common flags:
//
//	-v, --verbose   Print verbose output (detailed level)
//	    --trace     Print trace output   (most detailed level)
package cobrau

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/logger"
)

const (
	FlagVerbose = "verbose"
	FlagTrace   = "trace"
)

// PrepareRootCmd returns the root command with cmds and `version` attached.
// args are os.Args: the program name is skipped.
//
// preRun, if not nil, runs after the log level is set from flags
func PrepareRootCmd(use string, short string, args []string, version string, preRun func(cmd *cobra.Command) error, cmds ...*cobra.Command) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   use,
		Short: short,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setLogLevelFromFlags(cmd)
			if preRun != nil {
				return preRun(cmd)
			}
			return nil
		},
	}

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the current version",
		Aliases: []string{"ver"},
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cmd.Root().Name(), version)
		},
	}

	if len(args) > 0 {
		rootCmd.SetArgs(args[1:])
	}
	rootCmd.PersistentFlags().BoolP(FlagVerbose, "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().Bool(FlagTrace, false, "Enable extremely verbose output")

	rootCmd.AddCommand(cmds...)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	return rootCmd
}

func setLogLevelFromFlags(cmd *cobra.Command) {
	if ok, _ := cmd.Flags().GetBool(FlagTrace); ok {
		logger.SetLogLevel(logger.LogLevelTrace)
		logger.Verbose("Using logger.LogLevelTrace...")
	} else if ok, _ := cmd.Flags().GetBool(FlagVerbose); ok {
		logger.SetLogLevel(logger.LogLevelVerbose)
		logger.Verbose("Using logger.LogLevelVerbose...")
	}
}

// LogFlagsChanged reports whether --verbose or --trace was given
func LogFlagsChanged(cmd *cobra.Command) bool {
	return cmd.Flags().Changed(FlagVerbose) || cmd.Flags().Changed(FlagTrace)
}
