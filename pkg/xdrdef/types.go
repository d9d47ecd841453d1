/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xdrdef

// ArraySize describes the array dimension of a Def occurrence.
//
// The zero value means "not an array". A variable array declared with `<>`
// has no bound and is Unbounded; every other array carries Len > 0.
type ArraySize struct {
	Len       uint32 `json:"len,omitempty" yaml:"len,omitempty"`
	Unbounded bool   `json:"unbounded,omitempty" yaml:"unbounded,omitempty"`
}

// Def is a field or a type occurrence
type Def struct {
	Name       string    `json:"name" yaml:"name"`
	TypeName   string    `json:"type_name" yaml:"type_name"`
	FixedArray bool      `json:"fixed_array,omitempty" yaml:"fixed_array,omitempty"`
	ArraySize  ArraySize `json:"array_size" yaml:"array_size"`
}

type Typedef struct {
	Def Def `json:"def" yaml:"def"`
}

// Struct is a record. Props order is significant for generated layouts
// and for column ordering.
type Struct struct {
	Name  string `json:"name" yaml:"name"`
	Table bool   `json:"table,omitempty" yaml:"table,omitempty"`
	Props []Def  `json:"props" yaml:"props"`
}

type EnumValue struct {
	Name  string `json:"name" yaml:"name"`
	Index int32  `json:"index" yaml:"index"`
}

type Enum struct {
	Name   string      `json:"name" yaml:"name"`
	Values []EnumValue `json:"values" yaml:"values"`
}

// Case maps a discriminant literal to the arm value. Arms without payload
// hold VoidDef().
type Case struct {
	Value   string `json:"value" yaml:"value"`
	RetType Def    `json:"ret_type" yaml:"ret_type"`
}

// Switch is the discriminant of a union: the governing enum type and the
// name of the discriminant field
type Switch struct {
	EnumType string `json:"enum_type" yaml:"enum_type"`
	EnumName string `json:"enum_name" yaml:"enum_name"`
	Cases    []Case `json:"cases" yaml:"cases"`
}

type Union struct {
	Name   string `json:"name" yaml:"name"`
	Switch Switch `json:"switch" yaml:"switch"`
}

// Namespace is the top-level unit of declaration
type Namespace struct {
	Name     string    `json:"name" yaml:"name"`
	Typedefs []Typedef `json:"typedefs" yaml:"typedefs"`
	Structs  []Struct  `json:"structs" yaml:"structs"`
	Enums    []Enum    `json:"enums" yaml:"enums"`
	Unions   []Union   `json:"unions" yaml:"unions"`
}

// Namespaces is the AST of a compiled unit
type Namespaces []Namespace

// Index holds name→declaration maps over a whole compiled unit
type Index struct {
	Typedefs map[string]Typedef
	Structs  map[string]Struct
	Enums    map[string]Enum
	Unions   map[string]Union
}
