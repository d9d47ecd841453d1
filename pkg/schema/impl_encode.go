/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package schema

import (
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// columnDoc is the serialized shape of a Column: `kind` first, then the
// fields of the variant
type columnDoc struct {
	Kind      string       `json:"kind" yaml:"kind"`
	Name      string       `json:"name" yaml:"name"`
	Type      string       `json:"type,omitempty" yaml:"type,omitempty"`
	TypeName  string       `json:"type_name,omitempty" yaml:"type_name,omitempty"`
	Fixed     bool         `json:"fixed,omitempty" yaml:"fixed,omitempty"`
	Length    uint32       `json:"length,omitempty" yaml:"length,omitempty"`
	Unbounded bool         `json:"unbounded,omitempty" yaml:"unbounded,omitempty"`
	Child     *columnDoc   `json:"child,omitempty" yaml:"child,omitempty"`
	Children  []*columnDoc `json:"children,omitempty" yaml:"children,omitempty"`
}

type tableDoc struct {
	Namespace string       `json:"namespace" yaml:"namespace"`
	Name      string       `json:"name" yaml:"name"`
	Columns   []*columnDoc `json:"columns" yaml:"columns"`
}

type schemaDoc struct {
	Tables []tableDoc `json:"tables" yaml:"tables"`
}

func newColumnDoc(col Column) *columnDoc {
	if col == nil {
		return nil
	}
	doc := &columnDoc{
		Kind: col.Kind().String(),
		Name: col.ColumnName(),
	}
	switch c := col.(type) {
	case *Basic:
		doc.Type = c.Type.String()
		doc.Fixed = c.Fixed
		doc.Length = c.Length.Len
		doc.Unbounded = c.Length.Unbounded
	case *Array:
		doc.Fixed = c.Fixed
		doc.Length = c.Length.Len
		doc.Unbounded = c.Length.Unbounded
		doc.Child = newColumnDoc(c.Child)
	case *Typedef:
		doc.TypeName = c.TypeName
		doc.Child = newColumnDoc(c.Child)
	case *Struct:
		doc.TypeName = c.TypeName
		doc.Children = make([]*columnDoc, len(c.Children))
		for i, child := range c.Children {
			doc.Children[i] = newColumnDoc(child)
		}
	}
	return doc
}

func newSchemaDoc(s *Schema) schemaDoc {
	doc := schemaDoc{Tables: make([]tableDoc, len(s.Tables))}
	for i, t := range s.Tables {
		td := tableDoc{
			Namespace: t.Namespace,
			Name:      t.Name,
			Columns:   make([]*columnDoc, len(t.Columns)),
		}
		for j, col := range t.Columns {
			td.Columns[j] = newColumnDoc(col)
		}
		doc.Tables[i] = td
	}
	return doc
}

func writeJSONImpl(w io.Writer, s *Schema) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newSchemaDoc(s))
}

func writeYAMLImpl(w io.Writer, s *Schema) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newSchemaDoc(s)); err != nil {
		return err
	}
	return enc.Close()
}

// writeTextImpl renders one go-pretty table per schema table, the column
// tree indented by depth
func writeTextImpl(w io.Writer, s *Schema) error {
	for i, t := range s.Tables {
		tbl := table.NewWriter()
		tbl.SetStyle(table.StyleLight)
		tbl.SetTitle("%s.%s", t.Namespace, t.Name)
		tbl.AppendHeader(table.Row{"Column", "Kind", "Type"})
		for _, col := range t.Columns {
			Walk(col, func(c Column, depth int) {
				tbl.AppendRow(table.Row{strings.Repeat("  ", depth) + c.ColumnName(), c.Kind(), columnType(c)})
			})
		}
		tbl.AppendFooter(table.Row{fmt.Sprintf("%d columns", len(t.Columns))})
		sep := "\n"
		if i == len(s.Tables)-1 {
			sep = ""
		}
		if _, err := fmt.Fprintln(w, tbl.Render()+sep); err != nil {
			return err
		}
	}
	return nil
}

func columnType(c Column) string {
	switch col := c.(type) {
	case *Basic:
		if col.Length.IsArray() {
			return fmt.Sprintf("%s%s", col.Type, bounds(col.Fixed, col.Length.String()))
		}
		return col.Type.String()
	case *Array:
		return bounds(col.Fixed, col.Length.String())
	case *Typedef:
		return col.TypeName
	case *Struct:
		return col.TypeName
	}
	return ""
}

func bounds(fixed bool, length string) string {
	if fixed {
		return "[" + length + "]"
	}
	return "<" + length + ">"
}

func writeImpl(w io.Writer, s *Schema, f Format) error {
	switch f {
	case FormatText, "":
		return writeTextImpl(w, s)
	case FormatJSON:
		return writeJSONImpl(w, s)
	case FormatYAML:
		return writeYAMLImpl(w, s)
	}
	return errUnknownFormat(f)
}
