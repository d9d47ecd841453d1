/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"bytes"
	"slices"

	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/schema"
)

func newSchemaCmd(params *xdrgenParams) *cobra.Command {
	sp := schemaParams{}
	cmd := &cobra.Command{
		Use:   "schema [files...]",
		Short: "flatten tables into columns, reads stdin if no files given",
		Long: "Flattens structs declared with the `table` keyword, structs named by --table\n" +
			"or all structs with --all into column trees whose leaves are primitives.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := params.cfg
			sp.Output = stringFlag(cmd, flagOutput, sp.Output, cfg.Output)
			sp.Format = stringFlag(cmd, flagFormat, sp.Format, cfg.Format)
			sp.Tables = append(slices.Clone(cfg.Tables), sp.Tables...)
			sp.All = sp.All || cfg.AllTables
			return runSchema(cmd, sp, args)
		},
	}
	cmd.Flags().StringVarP(&sp.Output, flagOutput, "o", "", "output file, stdout if omitted")
	cmd.Flags().StringVar(&sp.Format, flagFormat, "", "output format: text, json or yaml")
	cmd.Flags().StringSliceVar(&sp.Tables, flagTable, nil, "struct to flatten in addition to `table` structs, repeatable")
	cmd.Flags().BoolVar(&sp.All, flagAll, false, "flatten all structs")
	return cmd
}

func runSchema(cmd *cobra.Command, sp schemaParams, files []string) error {
	data, err := renderSchema(cmd, sp, files)
	if err != nil {
		return err
	}
	return writeOutput(cmd, sp.Output, data)
}

func renderSchema(cmd *cobra.Command, sp schemaParams, files []string) ([]byte, error) {
	ns, err := compile(cmd, files)
	if err != nil {
		return nil, err
	}

	s, err := schema.Generate(ns, schema.Options{
		Tables:     sp.Tables,
		AllStructs: sp.All,
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := schema.Write(&buf, s, schema.Format(sp.Format)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
