/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

import (
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

func buildImpl(asts []*FileSchemaAST) (xdrdef.Namespaces, error) {
	var res xdrdef.Namespaces
	for _, f := range asts {
		if f == nil || f.Ast == nil {
			continue
		}
		for i := range f.Ast.Namespaces {
			ns, err := buildNamespace(&f.Ast.Namespaces[i])
			if err != nil {
				return nil, err
			}
			res = append(res, ns)
		}
	}
	return res, nil
}

func nameFromBracketStart(bs *BracketStart) (string, error) {
	if bs.Name == "" {
		return "", shapeErrorAt(&bs.Pos, ErrMissingName)
	}
	return string(bs.Name), nil
}

func buildNamespace(ns *NamespaceStmt) (res xdrdef.Namespace, err error) {
	if res.Name, err = nameFromBracketStart(&ns.Header); err != nil {
		return res, err
	}
	for i := range ns.Decls {
		stmt, ok := extractStatement(ns.Decls[i])
		if !ok {
			return res, shapeErrorAt(&ns.Pos, ErrEmptyStatement)
		}
		switch v := stmt.(type) {
		case *TypedefStmt:
			td, err := buildTypedef(v)
			if err != nil {
				return res, err
			}
			res.Typedefs = append(res.Typedefs, td)
		case *StructStmt:
			st, err := buildStruct(v)
			if err != nil {
				return res, err
			}
			res.Structs = append(res.Structs, st)
		case *EnumStmt:
			en, err := buildEnum(v)
			if err != nil {
				return res, err
			}
			res.Enums = append(res.Enums, en)
		case *UnionStmt:
			un, err := buildUnion(v)
			if err != nil {
				return res, err
			}
			res.Unions = append(res.Unions, un)
		}
	}
	return res, nil
}

func arrayInfo(a *ArraySuffix) (fixed bool, size xdrdef.ArraySize, err error) {
	var lit string
	switch {
	case a.Unbounded:
		return false, xdrdef.Unbounded(), nil
	case a.Variable != nil:
		lit = *a.Variable
	case a.Fixed != nil:
		fixed, lit = true, *a.Fixed
	default:
		return false, size, shapeErrorAt(&a.Pos, ErrEmptyArraySuffix)
	}
	n, e := parseUint32(lit)
	if e != nil {
		return false, size, shapeErrorAt(&a.Pos, ErrInvalidBound(lit))
	}
	if n == 0 {
		return false, size, shapeErrorAt(&a.Pos, ErrZeroArrayBound)
	}
	return fixed, xdrdef.Bounded(n), nil
}

// buildDef takes the type and the optional name of the declaration. A def
// without array suffix is not an array.
func buildDef(d *TypeDecl) (def xdrdef.Def, err error) {
	if d.Type == "" {
		return def, shapeErrorAt(&d.Pos, ErrMissingType)
	}
	def.TypeName = string(d.Type)
	def.Name = string(d.Name)

	suffix := d.Array
	if d.NameSuffix != nil {
		if suffix != nil {
			return def, shapeErrorAt(&d.NameSuffix.Pos, ErrDoubleArraySuffix)
		}
		suffix = d.NameSuffix
	}
	if suffix != nil {
		if def.FixedArray, def.ArraySize, err = arrayInfo(suffix); err != nil {
			return def, err
		}
	}
	return def, nil
}

func buildNamedDef(d *TypeDecl) (xdrdef.Def, error) {
	def, err := buildDef(d)
	if err != nil {
		return def, err
	}
	if def.Name == "" {
		return def, shapeErrorAt(&d.Pos, ErrMissingName)
	}
	return def, nil
}

func buildTypedef(td *TypedefStmt) (xdrdef.Typedef, error) {
	def, err := buildNamedDef(&td.Decl)
	return xdrdef.Typedef{Def: def}, err
}

func buildStruct(st *StructStmt) (res xdrdef.Struct, err error) {
	if res.Name, err = nameFromBracketStart(&st.Header); err != nil {
		return res, err
	}
	res.Table = st.Table
	for i := range st.Props {
		prop, err := buildNamedDef(&st.Props[i])
		if err != nil {
			return res, err
		}
		res.Props = append(res.Props, prop)
	}
	return res, nil
}

func buildEnum(en *EnumStmt) (res xdrdef.Enum, err error) {
	if res.Name, err = nameFromBracketStart(&en.Header); err != nil {
		return res, err
	}
	for i := range en.Values {
		v := &en.Values[i]
		if v.Name == "" {
			return res, shapeErrorAt(&v.Pos, ErrMissingName)
		}
		index, err := parseInt32(v.Value)
		if err != nil {
			return res, shapeErrorAt(&v.Pos, ErrEnumValue(string(v.Name), v.Value))
		}
		res.Values = append(res.Values, xdrdef.EnumValue{Name: string(v.Name), Index: index})
	}
	return res, nil
}

func buildCase(c *CaseStmt) (res xdrdef.Case, err error) {
	if c.Value == "" {
		return res, shapeErrorAt(&c.Pos, ErrMissingName)
	}
	res.Value = c.Value
	switch {
	case c.Void:
		res.RetType = xdrdef.VoidDef()
	case c.Decl != nil:
		// the arm name is optional: `case A: int;`
		if res.RetType, err = buildDef(c.Decl); err != nil {
			return res, err
		}
	default:
		return res, shapeErrorAt(&c.Pos, ErrEmptyCase)
	}
	return res, nil
}

func buildSwitch(sw *SwitchStmt) (res xdrdef.Switch, err error) {
	if sw.Type == "" || sw.Field == "" {
		return res, shapeErrorAt(&sw.Pos, ErrSwitchHeader)
	}
	res.EnumType = string(sw.Type)
	res.EnumName = string(sw.Field)
	for i := range sw.Cases {
		c, err := buildCase(&sw.Cases[i])
		if err != nil {
			return res, err
		}
		res.Cases = append(res.Cases, c)
	}
	return res, nil
}

func buildUnion(un *UnionStmt) (res xdrdef.Union, err error) {
	if un.Name == "" {
		return res, shapeErrorAt(&un.Pos, ErrMissingName)
	}
	res.Name = string(un.Name)
	res.Switch, err = buildSwitch(&un.Switch)
	return res, err
}
