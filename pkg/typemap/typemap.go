/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

// Package typemap substitutes IDL primitive names with target spellings.
package typemap

import (
	"golang.org/x/exp/maps"

	"github.com/voedger/xdrgen/pkg/xdrdef"
)

// Map maps IDL primitive names to target-specific spellings
type Map map[string]string

// Merge returns a new map with overrides applied on top of m
func (m Map) Merge(overrides map[string]string) Map {
	res := make(Map, len(m)+len(overrides))
	maps.Copy(res, m)
	maps.Copy(res, overrides)
	return res
}

// Lookup returns the target spelling of the type, or the name itself when
// the map has no entry for it
func (m Map) Lookup(typeName string) string {
	if mapped, ok := m[typeName]; ok {
		return mapped
	}
	return typeName
}

// Apply returns a copy of ns where every typedef def, struct property and
// union case type is substituted by m. Names without an entry (references to
// declared types) are left untouched. ns is never modified.
//
// Mapped spellings are not keys of the map, so applying the result again
// changes nothing. This is not enforced.
func Apply(ns xdrdef.Namespaces, m Map) xdrdef.Namespaces {
	res := ns.Clone()
	for n := range res {
		namespace := &res[n]
		for i := range namespace.Typedefs {
			mapDef(&namespace.Typedefs[i].Def, m)
		}
		for i := range namespace.Structs {
			props := namespace.Structs[i].Props
			for j := range props {
				mapDef(&props[j], m)
			}
		}
		for i := range namespace.Unions {
			cases := namespace.Unions[i].Switch.Cases
			for j := range cases {
				mapDef(&cases[j].RetType, m)
			}
		}
	}
	return res
}

// mapDef is only ever called on defs of a fresh clone
func mapDef(d *xdrdef.Def, m Map) {
	d.TypeName = m.Lookup(d.TypeName)
}
