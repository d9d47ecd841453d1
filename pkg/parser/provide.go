/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

import "github.com/voedger/xdrgen/pkg/xdrdef"

// ParseFile parses content of the single file, creates FileSchemaAST and returns pointer to it.
// Performs syntax analysis only, returns *GrammarError on failure
func ParseFile(fileName, content string) (*FileSchemaAST, error) {
	ast, err := parseImpl(fileName, content)
	if err != nil {
		return nil, err
	}
	return &FileSchemaAST{
		FileName: fileName,
		Ast:      ast,
	}, nil
}

// BuildNamespaces walks parse trees of the compiled unit once and returns the
// namespaces in file and encounter order. Returns *ShapeError on the first
// malformed node; no partial result is returned
func BuildNamespaces(asts ...*FileSchemaAST) (xdrdef.Namespaces, error) {
	return buildImpl(asts)
}

// ParseString is a helper which parses and builds a single source
func ParseString(fileName, content string) (xdrdef.Namespaces, error) {
	ast, err := ParseFile(fileName, content)
	if err != nil {
		return nil, err
	}
	return BuildNamespaces(ast)
}

// ParseDir is a helper which parses all IDL files (*.x) of the directory in
// file name order and builds them as one unit
func ParseDir(fs IReadFS, dir string) (xdrdef.Namespaces, error) {
	return parseDirImpl(fs, dir)
}

// Analyse checks that every type reference of the unit resolves to a
// primitive or a declared type, that union switches are governed by enums
// and that no name is declared twice.
// All problems found are returned joined
func Analyse(ns xdrdef.Namespaces) error {
	return analyseImpl(ns)
}
