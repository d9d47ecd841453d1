/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/codegen"
	"github.com/voedger/xdrgen/pkg/logger"
	"github.com/voedger/xdrgen/pkg/parser"
)

func newGenCmd(params *xdrgenParams) *cobra.Command {
	gen := genParams{}
	cmd := &cobra.Command{
		Use:   "gen [files...]",
		Short: "generate code for the target language, reads stdin if no files given",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := params.cfg
			gen.Target = stringFlag(cmd, flagTarget, gen.Target, cfg.Target)
			gen.Output = stringFlag(cmd, flagOutput, gen.Output, cfg.Output)
			gen.GoPackage = stringFlag(cmd, "go-package", gen.GoPackage, cfg.GoPackage)

			if gen.Check && gen.Output == "" {
				return ErrCheckNeedsFile
			}
			if gen.Target == targetSchema {
				data, err := renderSchema(cmd, schemaParams{
					Format: cfg.Format,
					Tables: cfg.Tables,
					All:    cfg.AllTables,
				}, args)
				if err != nil {
					return err
				}
				return emit(cmd, gen, data)
			}
			return runGen(cmd, params, gen, args)
		},
	}
	cmd.Flags().StringVarP(&gen.Output, flagOutput, "o", "", "output file, stdout if omitted")
	cmd.Flags().StringVarP(&gen.Target, flagTarget, "l", "", fmt.Sprintf("target: %v or %s", codegen.Targets(), targetSchema))
	cmd.Flags().StringVar(&gen.GoPackage, "go-package", "", "package name of Go output")
	cmd.Flags().BoolVar(&gen.Check, "check", false, "compare with the existing output file instead of writing it")
	return cmd
}

func runGen(cmd *cobra.Command, params *xdrgenParams, gen genParams, files []string) error {
	target, err := codegen.Canonical(gen.Target)
	if err != nil {
		return err
	}
	renderer, err := codegen.New(target, codegen.Options{
		Header:    params.cfg.Header,
		GoPackage: gen.GoPackage,
		TypeMap:   params.cfg.TypeMap(target),
	})
	if err != nil {
		return err
	}

	ns, err := compile(cmd, files)
	if err != nil {
		return err
	}
	if err := parser.Analyse(ns); err != nil {
		return err
	}

	code, err := renderer.Render(ns)
	if err != nil {
		return err
	}
	logger.Verbose("rendered", renderer.Target())
	return emit(cmd, gen, code)
}

// emit writes the output, or compares it with the output file on --check
func emit(cmd *cobra.Command, gen genParams, data []byte) error {
	if gen.Check {
		return checkOutput(cmd, gen.Output, data)
	}
	return writeOutput(cmd, gen.Output, data)
}

// checkOutput prints the lines differing between the existing file and the
// generated code, `-` for existing and `+` for generated ones
func checkOutput(cmd *cobra.Command, path string, generated []byte) error {
	existing, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = diffTimeoutSeconds * time.Second
	src, dst, lines := dmp.DiffLinesToRunes(string(existing), string(generated))
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(src, dst, false), lines)
	if !hasChanges(diffs) {
		fmt.Fprintln(cmd.OutOrStdout(), green(path+" is up to date"))
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), lineDiff(path, diffs))
	return errOutdated(path)
}

func hasChanges(diffs []diffmatchpatch.Diff) bool {
	for _, d := range diffs {
		if d.Type != diffmatchpatch.DiffEqual {
			return true
		}
	}
	return false
}

// lineDiff renders changed lines under `@@ -old +new @@` hunk headers
func lineDiff(path string, diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n+++ generated\n", path)
	oldLine, newLine := 1, 1
	inHunk := false
	for _, d := range diffs {
		lines := splitLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			oldLine += len(lines)
			newLine += len(lines)
			inHunk = false
			continue
		case diffmatchpatch.DiffDelete:
			if !inHunk {
				fmt.Fprintf(&b, "@@ -%d +%d @@\n", oldLine, newLine)
				inHunk = true
			}
			for _, l := range lines {
				b.WriteString("-" + l + "\n")
			}
			oldLine += len(lines)
		case diffmatchpatch.DiffInsert:
			if !inHunk {
				fmt.Fprintf(&b, "@@ -%d +%d @@\n", oldLine, newLine)
				inHunk = true
			}
			for _, l := range lines {
				b.WriteString("+" + l + "\n")
			}
			newLine += len(lines)
		}
	}
	return b.String()
}

// splitLines splits diff text into lines without their terminators
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
