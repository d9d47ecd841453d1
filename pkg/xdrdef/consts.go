/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package xdrdef

// Primitive IDL type names
const (
	Boolean       = "boolean"
	Int           = "int"
	UnsignedInt   = "unsigned int"
	Hyper         = "hyper"
	UnsignedHyper = "unsigned hyper"
	Float         = "float"
	Double        = "double"
	String        = "string"
	Opaque        = "opaque"
)

// Void is the name of the Def synthesized for a union arm without payload
const Void = "void"

var primitives = map[string]bool{
	Boolean:       true,
	Int:           true,
	UnsignedInt:   true,
	Hyper:         true,
	UnsignedHyper: true,
	Float:         true,
	Double:        true,
	String:        true,
	Opaque:        true,
}

// Primitives returns IDL primitive names in declaration order
func Primitives() []string {
	return []string{Boolean, Int, UnsignedInt, Hyper, UnsignedHyper, Float, Double, String, Opaque}
}

// IsPrimitive reports whether name is one of the IDL base types
func IsPrimitive(name string) bool {
	return primitives[name]
}

// IsSequence reports whether the primitive is itself a byte or character
// sequence. An array suffix on such a type bounds its length instead of
// declaring an array of elements.
func IsSequence(name string) bool {
	return name == String || name == Opaque
}
