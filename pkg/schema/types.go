/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package schema

import "github.com/voedger/xdrgen/pkg/xdrdef"

// Column is a node of the flattened field tree. Implemented by *Basic,
// *Array, *Struct and *Typedef only.
type Column interface {
	Kind() ColumnKind
	ColumnName() string
}

// Basic is a primitive leaf. Length is set for bounded string and opaque
// fields only: the bound limits the sequence, it does not declare elements.
type Basic struct {
	Name   string
	Type   BasicType
	Fixed  bool
	Length xdrdef.ArraySize
}

// Array holds exactly one child describing the element
type Array struct {
	Name   string
	Fixed  bool
	Length xdrdef.ArraySize
	Child  Column
}

// Struct holds one child per property of the struct, in declaration order
type Struct struct {
	Name     string
	TypeName string
	Children []Column
}

// Typedef holds exactly one child: the expansion of the aliased type
type Typedef struct {
	Name     string
	TypeName string
	Child    Column
}

// Table is a struct selected for flattening
type Table struct {
	Namespace string
	Name      string
	Columns   []Column
}

// Schema is the ordered list of flattened tables
type Schema struct {
	Tables []Table
}

// Options selects the structs which become tables. Structs tagged with the
// `table` keyword are always selected.
type Options struct {
	// Tables names extra structs to flatten
	Tables []string
	// AllStructs selects every struct of the unit
	AllStructs bool
}

// Format is the output encoding of a Schema
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)
