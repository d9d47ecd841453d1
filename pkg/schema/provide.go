/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

// Package schema flattens structs into trees of columns whose leaves are
// primitive types.
package schema

import (
	"io"

	"github.com/voedger/xdrgen/pkg/xdrdef"
)

// FlattenDef expands a single Def into a column with no remaining
// indirections. Resolution order is: occurrence array dimension, typedef,
// struct, primitive. Void union arms flatten to nil.
//
// Returns *ResolutionError if a type name is neither a typedef, a struct nor a
// primitive, or if a typedef or struct contains itself.
func FlattenDef(def xdrdef.Def, idx *xdrdef.Index) (Column, error) {
	return flattenDefImpl(def, idx)
}

// Generate flattens the properties of every selected struct in declaration
// order
func Generate(ns xdrdef.Namespaces, opts Options) (*Schema, error) {
	return generateImpl(ns, opts)
}

// Formats lists supported output encodings
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML}
}

func WriteText(w io.Writer, s *Schema) error {
	return writeTextImpl(w, s)
}

func WriteJSON(w io.Writer, s *Schema) error {
	return writeJSONImpl(w, s)
}

func WriteYAML(w io.Writer, s *Schema) error {
	return writeYAMLImpl(w, s)
}

// Write encodes the schema in format f. Empty format means text
func Write(w io.Writer, s *Schema, f Format) error {
	return writeImpl(w, s, f)
}
