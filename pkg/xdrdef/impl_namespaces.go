/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xdrdef

import "slices"

// Clone returns a deep copy. Mutating the copy never affects ns.
func (ns Namespaces) Clone() Namespaces {
	if ns == nil {
		return nil
	}
	res := make(Namespaces, len(ns))
	for i, n := range ns {
		res[i] = n.Clone()
	}
	return res
}

func (n Namespace) Clone() Namespace {
	c := Namespace{
		Name:     n.Name,
		Typedefs: slices.Clone(n.Typedefs),
		Enums:    make([]Enum, len(n.Enums)),
		Structs:  make([]Struct, len(n.Structs)),
		Unions:   make([]Union, len(n.Unions)),
	}
	for i, e := range n.Enums {
		c.Enums[i] = Enum{Name: e.Name, Values: slices.Clone(e.Values)}
	}
	for i, s := range n.Structs {
		c.Structs[i] = Struct{Name: s.Name, Table: s.Table, Props: slices.Clone(s.Props)}
	}
	for i, u := range n.Unions {
		c.Unions[i] = u
		c.Unions[i].Switch.Cases = slices.Clone(u.Switch.Cases)
	}
	return c
}

// Index builds the name→declaration maps of the whole unit. Declaration
// order is irrelevant: references are resolved against the complete maps
// afterwards. When a name is declared twice the latter declaration wins;
// duplicates are reported by the parser analysis.
func (ns Namespaces) Index() *Index {
	idx := &Index{
		Typedefs: make(map[string]Typedef),
		Structs:  make(map[string]Struct),
		Enums:    make(map[string]Enum),
		Unions:   make(map[string]Union),
	}
	for _, n := range ns {
		for _, td := range n.Typedefs {
			idx.Typedefs[td.Def.Name] = td
		}
		for _, s := range n.Structs {
			idx.Structs[s.Name] = s
		}
		for _, e := range n.Enums {
			idx.Enums[e.Name] = e
		}
		for _, u := range n.Unions {
			idx.Unions[u.Name] = u
		}
	}
	return idx
}

// Declared reports whether name is a typedef, struct, enum or union of the unit
func (idx *Index) Declared(name string) bool {
	if _, ok := idx.Typedefs[name]; ok {
		return true
	}
	if _, ok := idx.Structs[name]; ok {
		return true
	}
	if _, ok := idx.Enums[name]; ok {
		return true
	}
	_, ok := idx.Unions[name]
	return ok
}

// Resolvable reports whether the type name is a primitive or declared in the unit
func (idx *Index) Resolvable(typeName string) bool {
	return IsPrimitive(typeName) || idx.Declared(typeName)
}

// Defs calls visit for every Def occurrence subject to type resolution:
// typedef defs, struct properties and union case values. Void arms are
// skipped.
func (ns Namespaces) Defs(visit func(owner string, d Def)) {
	for _, n := range ns {
		for _, td := range n.Typedefs {
			visit(td.Def.Name, td.Def)
		}
		for _, s := range n.Structs {
			for _, p := range s.Props {
				visit(s.Name, p)
			}
		}
		for _, u := range n.Unions {
			for _, c := range u.Switch.Cases {
				if !c.RetType.IsVoid() {
					visit(u.Name, c.RetType)
				}
			}
		}
	}
}
