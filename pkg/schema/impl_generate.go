/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package schema

import (
	"errors"

	"github.com/voedger/xdrgen/pkg/xdrdef"
)

func generateImpl(ns xdrdef.Namespaces, opts Options) (*Schema, error) {
	idx := ns.Index()

	requested := make(map[string]bool, len(opts.Tables))
	for _, name := range opts.Tables {
		if _, ok := idx.Structs[name]; !ok {
			return nil, ErrUnknownTableName(name)
		}
		requested[name] = true
	}

	res := &Schema{Tables: make([]Table, 0)}
	for _, n := range ns {
		for _, s := range n.Structs {
			if !s.Table && !opts.AllStructs && !requested[s.Name] {
				continue
			}
			table, err := flattenTable(n.Name, s, idx)
			if err != nil {
				return nil, err
			}
			res.Tables = append(res.Tables, table)
		}
	}
	return res, nil
}

func flattenTable(namespace string, s xdrdef.Struct, idx *xdrdef.Index) (Table, error) {
	table := Table{
		Namespace: namespace,
		Name:      s.Name,
		Columns:   make([]Column, 0, len(s.Props)),
	}
	for _, prop := range s.Props {
		f := newFlattener(idx)
		// columns of the table are expanded inside the table struct
		f.expanding[s.Name] = true
		f.path = append(f.path, prop.Name)
		col, err := f.flatten(prop)
		if err != nil {
			var re *ResolutionError
			if errors.As(err, &re) {
				re.Table = s.Name
			}
			return Table{}, err
		}
		table.Columns = append(table.Columns, col)
	}
	return table, nil
}
