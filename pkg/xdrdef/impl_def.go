/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xdrdef

import "strconv"

// Bounded returns the size of an array with n elements at most (or exactly n
// for fixed arrays)
func Bounded(n uint32) ArraySize {
	return ArraySize{Len: n}
}

// Unbounded returns the size of a variable array declared without bound
func Unbounded() ArraySize {
	return ArraySize{Unbounded: true}
}

func (s ArraySize) IsArray() bool {
	return s.Unbounded || s.Len > 0
}

// String renders the bound as it is written inside the array brackets.
// Unbounded renders empty.
func (s ArraySize) String() string {
	if s.Unbounded || s.Len == 0 {
		return ""
	}
	return strconv.FormatUint(uint64(s.Len), 10)
}

// VoidDef returns the Def of a union arm that carries no payload
func VoidDef() Def {
	return Def{Name: Void}
}

func (d Def) IsVoid() bool {
	return d.Name == Void && d.TypeName == ""
}

func (d Def) IsArray() bool {
	return d.ArraySize.IsArray()
}

// Element returns a copy of the Def with the array dimension stripped
func (d Def) Element() Def {
	d.FixedArray = false
	d.ArraySize = ArraySize{}
	return d
}

// String renders the Def in IDL syntax, e.g. `int values<16>`
func (d Def) String() string {
	if d.IsVoid() {
		return Void
	}
	s := d.TypeName
	if d.IsArray() {
		if d.FixedArray {
			s += "[" + d.ArraySize.String() + "]"
		} else {
			s += "<" + d.ArraySize.String() + ">"
		}
	}
	if d.Name != "" {
		s += " " + d.Name
	}
	return s
}
