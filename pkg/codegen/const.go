/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package codegen

import "github.com/voedger/xdrgen/pkg/xdrdef"

const (
	TargetGo       = "go"
	TargetRust     = "rust"
	TargetCommonJS = "commonjs"
	TargetJS       = "js"
)

// aliases of canonical target names
var targetAliases = map[string]string{
	"node":   TargetCommonJS,
	"golang": TargetGo,
}

// DefaultHeader is prepended to every generated file unless Options.Header is set
const DefaultHeader = "// Code generated by xdrgen. DO NOT EDIT."

const DefaultGoPackage = "xdr"

// unboundedLen is the length emitted for variable arrays declared without bound
const unboundedLen = 2147483647

var goTypes = map[string]string{
	xdrdef.Boolean:       "bool",
	xdrdef.Int:           "int32",
	xdrdef.UnsignedInt:   "uint32",
	xdrdef.Hyper:         "int64",
	xdrdef.UnsignedHyper: "uint64",
	xdrdef.Float:         "float32",
	xdrdef.Double:        "float64",
	xdrdef.Opaque:        "byte",
}

var rustTypes = map[string]string{
	xdrdef.Boolean:       "bool",
	xdrdef.Int:           "i32",
	xdrdef.UnsignedInt:   "u32",
	xdrdef.Hyper:         "i64",
	xdrdef.UnsignedHyper: "u64",
	xdrdef.Float:         "f32",
	xdrdef.Double:        "f64",
	xdrdef.String:        "String",
	xdrdef.Opaque:        "u8",
}

// xdr-js-serialize class names
var jsTypes = map[string]string{
	xdrdef.Boolean:       "Bool",
	xdrdef.Int:           "Int",
	xdrdef.UnsignedInt:   "UInt",
	xdrdef.Hyper:         "Hyper",
	xdrdef.UnsignedHyper: "UHyper",
	xdrdef.Float:         "Float",
	xdrdef.Double:        "Double",
	xdrdef.String:        "Str",
}
