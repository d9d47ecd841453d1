/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"bytes"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/voedger/xdrgen/pkg/parser"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

func newParseCmd(params *xdrgenParams) *cobra.Command {
	pp := parseParams{}
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "print declarations of the compiled unit, reads stdin if no files given",
		RunE: func(cmd *cobra.Command, args []string) error {
			pp.Output = stringFlag(cmd, flagOutput, pp.Output, params.cfg.Output)
			pp.Format = stringFlag(cmd, flagFormat, pp.Format, params.cfg.Format)

			ns, err := compile(cmd, args)
			if err != nil {
				return err
			}
			if err := parser.Analyse(ns); err != nil {
				return err
			}
			data, err := dumpNamespaces(ns, pp.Format)
			if err != nil {
				return err
			}
			return writeOutput(cmd, pp.Output, data)
		},
	}
	cmd.Flags().StringVarP(&pp.Output, flagOutput, "o", "", "output file, stdout if omitted")
	cmd.Flags().StringVar(&pp.Format, flagFormat, "", "output format: text, json or yaml")
	return cmd
}

func dumpNamespaces(ns xdrdef.Namespaces, format string) ([]byte, error) {
	switch format {
	case "json":
		data, err := json.MarshalIndent(ns, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(ns); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "text", "":
		return []byte(declarationsTable(ns) + "\n"), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDump, format)
}

func declarationsTable(ns xdrdef.Namespaces) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Namespace", "Kind", "Name", "Declaration"})
	count := 0
	for _, n := range ns {
		for _, td := range n.Typedefs {
			tbl.AppendRow(table.Row{n.Name, "typedef", td.Def.Name, td.Def.String()})
		}
		for _, s := range n.Structs {
			kind := "struct"
			if s.Table {
				kind = "table struct"
			}
			tbl.AppendRow(table.Row{n.Name, kind, s.Name, describeStruct(s)})
		}
		for _, e := range n.Enums {
			tbl.AppendRow(table.Row{n.Name, "enum", e.Name, describeEnum(e)})
		}
		for _, u := range n.Unions {
			tbl.AppendRow(table.Row{n.Name, "union", u.Name, describeUnion(u)})
		}
		count += len(n.Typedefs) + len(n.Structs) + len(n.Enums) + len(n.Unions)
	}
	tbl.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d declarations", count)})
	return tbl.Render()
}

func describeStruct(s xdrdef.Struct) string {
	props := make([]string, len(s.Props))
	for i, p := range s.Props {
		props[i] = p.String() + ";"
	}
	return "{ " + strings.Join(props, " ") + " }"
}

func describeEnum(e xdrdef.Enum) string {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = fmt.Sprintf("%s = %d", v.Name, v.Index)
	}
	return "{ " + strings.Join(values, ", ") + " }"
}

func describeUnion(u xdrdef.Union) string {
	var b strings.Builder
	fmt.Fprintf(&b, "switch (%s %s) {", u.Switch.EnumType, u.Switch.EnumName)
	for _, c := range u.Switch.Cases {
		fmt.Fprintf(&b, " case %s: %s;", c.Value, c.RetType)
	}
	b.WriteString(" }")
	return b.String()
}
