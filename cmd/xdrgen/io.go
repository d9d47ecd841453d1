/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/logger"
	"github.com/voedger/xdrgen/pkg/parser"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

// compile parses input files (stdin if none) and builds them as one unit
func compile(cmd *cobra.Command, files []string) (xdrdef.Namespaces, error) {
	asts := make([]*parser.FileSchemaAST, 0, len(files))
	if len(files) == 0 {
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		ast, err := parseInput(stdinFileName, content)
		if err != nil {
			return nil, err
		}
		asts = append(asts, ast)
	}
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		ast, err := parseInput(file, content)
		if err != nil {
			return nil, err
		}
		asts = append(asts, ast)
	}

	ns, err := parser.BuildNamespaces(asts...)
	if err != nil {
		return nil, err
	}
	logger.Verbosef("built %d namespace(s) from %d file(s)", len(ns), len(asts))
	return ns, nil
}

func parseInput(fileName string, content []byte) (*parser.FileSchemaAST, error) {
	if logger.IsVerbose() {
		logger.Verbose("parsing", fileName, humanize.Bytes(uint64(len(content))))
	}
	return parser.ParseFile(fileName, string(content))
}

// writeOutput writes to the file, or to the command output if path is empty
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, outputPermissions); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("written", path, humanize.Bytes(uint64(len(data))))
	}
	return nil
}
