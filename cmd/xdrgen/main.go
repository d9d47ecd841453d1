/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/cobrau"
)

//go:embed version
var version string

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		fmt.Fprintln(os.Stderr, red(err))
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	return cobrau.ExecCommandAndCatchInterrupt(newRootCmd(args, ver))
}

func newRootCmd(args []string, ver string) *cobra.Command {
	params := &xdrgenParams{}
	rootCmd := cobrau.PrepareRootCmd(
		"xdrgen",
		"XDR IDL compiler: generates code and flattened schemas",
		args,
		ver,
		params.load,
		newGenCmd(params),
		newSchemaCmd(params),
		newParseCmd(params),
		newTargetsCmd(params),
	)
	rootCmd.PersistentFlags().StringVar(&params.ConfigFile, "config", "", "path to the config file (default ./xdrgen.yaml)")
	return rootCmd
}
