/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package codegen

import (
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"github.com/voedger/xdrgen/pkg/xdrdef"
)

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func isNumeric(s string) bool {
	_, err := strconv.ParseInt(s, 0, 64)
	return err == nil
}

// variantName turns a case literal into an identifier
func variantName(value string) string {
	if isNumeric(value) {
		return "V" + strings.ReplaceAll(value, "-", "Neg")
	}
	return value
}

// goArm is a union field; cases sharing an arm share the field
type goArm struct {
	Name string
	Def  xdrdef.Def
}

// goArmName is the field holding the case value. Nameless arms are named
// after the case: `case A: int;` is held by ArmA
func goArmName(c xdrdef.Case) string {
	if c.RetType.IsVoid() {
		return ""
	}
	if c.RetType.Name == "" {
		return "Arm" + capitalize(variantName(c.Value))
	}
	return capitalize(c.RetType.Name)
}

// goArms lists distinct non-void arms in case order
func goArms(cases []xdrdef.Case) []goArm {
	res := make([]goArm, 0, len(cases))
	seen := make(map[string]bool, len(cases))
	for _, c := range cases {
		name := goArmName(c)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		res = append(res, goArm{Name: name, Def: c.RetType})
	}
	return res
}

func goFuncs(r *renderer) template.FuncMap {
	str := r.primitive(xdrdef.String)

	return template.FuncMap{
		// goName exports declared and field names
		"goName":  capitalize,
		"armName": goArmName,
		"arms":    goArms,
		"goType": func(d xdrdef.Def) string {
			t := d.TypeName
			if !r.isBuiltin(t) {
				t = capitalize(t)
			}
			if !d.IsArray() || d.TypeName == str {
				return t
			}
			if d.FixedArray {
				return fmt.Sprintf("[%d]%s", d.ArraySize.Len, t)
			}
			return "[]" + t
		},
		// maxSize is the bound of a variable array or string, zero otherwise
		"maxSize": func(d xdrdef.Def) uint32 {
			if d.FixedArray || d.ArraySize.Unbounded {
				return 0
			}
			return d.ArraySize.Len
		},
		"caseLabel": func(enumType, value string) string {
			if isNumeric(value) {
				return fmt.Sprintf("%s(%s)", enumType, value)
			}
			return enumType + value
		},
	}
}

func rustFuncs(r *renderer) template.FuncMap {
	str := r.primitive(xdrdef.String)
	return template.FuncMap{
		"rustType": func(d xdrdef.Def) string {
			if d.IsArray() && d.TypeName != str {
				return "Vec<" + d.TypeName + ">"
			}
			return d.TypeName
		},
		"arrayAttr": func(d xdrdef.Def) string {
			if !d.IsArray() {
				return ""
			}
			if d.FixedArray {
				return fmt.Sprintf("#[array(fixed = %d)]", length(d.ArraySize))
			}
			return fmt.Sprintf("#[array(var = %d)]", length(d.ArraySize))
		},
		"variant": variantName,
	}
}

// jsFuncs serves both the CommonJS and the ES module flavour
func jsFuncs(esm bool) func(r *renderer) template.FuncMap {
	lib := "_xdrJsSerialize.default."
	if esm {
		lib = "XDR."
	}
	return func(r *renderer) template.FuncMap {
		conv := jsConv{
			lib:    lib,
			str:    r.primitive(xdrdef.String),
			opaque: r.primitive(xdrdef.Opaque),
			r:      r,
		}
		return template.FuncMap{
			"esm":      func() bool { return esm },
			"typeconv": conv.typeconv,
			"lib":      func() string { return lib },
		}
	}
}

type jsConv struct {
	lib    string
	str    string
	opaque string
	r      *renderer
}

// typeconv returns the xdr-js-serialize expression constructing a value of
// the Def
func (c jsConv) typeconv(d xdrdef.Def) string {
	if d.IsVoid() {
		return fmt.Sprintf("new %sVoid()", c.lib)
	}
	size := length(d.ArraySize)
	if !d.IsArray() {
		size = unboundedLen
	}
	switch d.TypeName {
	case c.opaque:
		if d.FixedArray {
			return fmt.Sprintf("new %sFixedOpaque(%d)", c.lib, size)
		}
		return fmt.Sprintf("new %sVarOpaque(%d)", c.lib, size)
	case c.str:
		return fmt.Sprintf("new %s%s('', %d)", c.lib, d.TypeName, size)
	}

	builtin := c.r.isBuiltin(d.TypeName)
	if !d.IsArray() {
		if builtin {
			return fmt.Sprintf("new %s%s()", c.lib, d.TypeName)
		}
		return d.TypeName + "()"
	}
	elem := d.TypeName
	if builtin {
		elem = fmt.Sprintf("() => new %s%s()", c.lib, d.TypeName)
	}
	if d.FixedArray {
		return fmt.Sprintf("new %sFixedArray(%d, %s)", c.lib, size, elem)
	}
	return fmt.Sprintf("new %sVarArray(%d, %s)", c.lib, size, elem)
}
