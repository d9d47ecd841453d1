/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package schema

import "github.com/voedger/xdrgen/pkg/xdrdef"

// ColumnKind discriminates Column variants
type ColumnKind uint8

const (
	KindBasic ColumnKind = iota
	KindArray
	KindStruct
	KindTypedef
)

var columnKindNames = [...]string{
	KindBasic:   "basic",
	KindArray:   "array",
	KindStruct:  "struct",
	KindTypedef: "typedef",
}

func (k ColumnKind) String() string {
	if int(k) < len(columnKindNames) {
		return columnKindNames[k]
	}
	return "unknown"
}

// BasicType is the closed set of primitive leaf types
type BasicType uint8

const (
	BasicBoolean BasicType = iota + 1
	BasicInt
	BasicUnsignedInt
	BasicHyper
	BasicUnsignedHyper
	BasicFloat
	BasicDouble
	BasicString
	BasicOpaque
)

var basicTypes = map[string]BasicType{
	xdrdef.Boolean:       BasicBoolean,
	xdrdef.Int:           BasicInt,
	xdrdef.UnsignedInt:   BasicUnsignedInt,
	xdrdef.Hyper:         BasicHyper,
	xdrdef.UnsignedHyper: BasicUnsignedHyper,
	xdrdef.Float:         BasicFloat,
	xdrdef.Double:        BasicDouble,
	xdrdef.String:        BasicString,
	xdrdef.Opaque:        BasicOpaque,
}

var basicTypeNames = [...]string{
	BasicBoolean:       xdrdef.Boolean,
	BasicInt:           xdrdef.Int,
	BasicUnsignedInt:   xdrdef.UnsignedInt,
	BasicHyper:         xdrdef.Hyper,
	BasicUnsignedHyper: xdrdef.UnsignedHyper,
	BasicFloat:         xdrdef.Float,
	BasicDouble:        xdrdef.Double,
	BasicString:        xdrdef.String,
	BasicOpaque:        xdrdef.Opaque,
}
