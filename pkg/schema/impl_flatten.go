/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package schema

import (
	"strings"

	"github.com/voedger/xdrgen/pkg/xdrdef"
)

type flattener struct {
	idx *xdrdef.Index
	// typedefs and structs being expanded
	expanding map[string]bool
	path      []string
}

func newFlattener(idx *xdrdef.Index) *flattener {
	return &flattener{
		idx:       idx,
		expanding: make(map[string]bool),
	}
}

func flattenDefImpl(def xdrdef.Def, idx *xdrdef.Index) (Column, error) {
	if def.IsVoid() {
		return nil, nil
	}
	f := newFlattener(idx)
	f.path = append(f.path, def.Name)
	return f.flatten(def)
}

// flatten consumes exactly one indirection per call: an occurrence array
// dimension, a typedef layer or a struct
func (f *flattener) flatten(def xdrdef.Def) (Column, error) {
	if def.IsArray() && !xdrdef.IsSequence(def.TypeName) {
		child, err := f.flatten(def.Element())
		if err != nil {
			return nil, err
		}
		return &Array{
			Name:   def.Name,
			Fixed:  def.FixedArray,
			Length: def.ArraySize,
			Child:  child,
		}, nil
	}

	if td, ok := f.idx.Typedefs[def.TypeName]; ok {
		return f.flattenTypedef(def, td)
	}

	if s, ok := f.idx.Structs[def.TypeName]; ok {
		return f.flattenStruct(def, s)
	}

	bt, ok := basicTypes[def.TypeName]
	if !ok {
		return nil, f.errorAt(def.TypeName, ErrUnresolvedType)
	}
	res := &Basic{Name: def.Name, Type: bt}
	if def.IsArray() {
		res.Fixed = def.FixedArray
		res.Length = def.ArraySize
	}
	return res, nil
}

func (f *flattener) flattenTypedef(def xdrdef.Def, td xdrdef.Typedef) (Column, error) {
	if err := f.enter(td.Def.Name); err != nil {
		return nil, err
	}
	defer f.leave(td.Def.Name)

	aliased := td.Def
	aliased.Name = def.Name
	child, err := f.flatten(aliased)
	if err != nil {
		return nil, err
	}
	return &Typedef{
		Name:     def.Name,
		TypeName: td.Def.Name,
		Child:    child,
	}, nil
}

func (f *flattener) flattenStruct(def xdrdef.Def, s xdrdef.Struct) (Column, error) {
	if err := f.enter(s.Name); err != nil {
		return nil, err
	}
	defer f.leave(s.Name)

	res := &Struct{
		Name:     def.Name,
		TypeName: s.Name,
		Children: make([]Column, 0, len(s.Props)),
	}
	for _, prop := range s.Props {
		f.path = append(f.path, prop.Name)
		child, err := f.flatten(prop)
		if err != nil {
			return nil, err
		}
		f.path = f.path[:len(f.path)-1]
		res.Children = append(res.Children, child)
	}
	return res, nil
}

func (f *flattener) enter(typeName string) error {
	if f.expanding[typeName] {
		return f.errorAt(typeName, ErrCyclicType)
	}
	f.expanding[typeName] = true
	return nil
}

func (f *flattener) leave(typeName string) {
	delete(f.expanding, typeName)
}

func (f *flattener) errorAt(typeName string, err error) error {
	return &ResolutionError{
		Field:    strings.Join(f.path, "."),
		TypeName: typeName,
		Err:      err,
	}
}
