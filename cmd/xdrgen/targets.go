/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/voedger/xdrgen/pkg/codegen"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

func newTargetsCmd(params *xdrgenParams) *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "list targets and their primitive types, config overrides included",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tbl, err := targetsTable(params)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return err
		},
	}
}

func targetsTable(params *xdrgenParams) (string, error) {
	targets := codegen.Targets()

	header := table.Row{"Primitive"}
	maps := make([]map[string]string, len(targets))
	for i, target := range targets {
		r, err := codegen.New(target, codegen.Options{TypeMap: params.cfg.TypeMap(target)})
		if err != nil {
			return "", err
		}
		maps[i] = r.TypeMap()
		header = append(header, target)
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(header)
	for _, primitive := range xdrdef.Primitives() {
		row := table.Row{primitive}
		for _, m := range maps {
			spelling, ok := m[primitive]
			if !ok {
				spelling = primitive
			}
			row = append(row, spelling)
		}
		tbl.AppendRow(row)
	}
	return tbl.Render(), nil
}
