/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

import (
	fs "io/fs"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// FileSchemaAST is the parse tree of a single source file
type FileSchemaAST struct {
	FileName string
	Ast      *FileAST
}

type IReadFS interface {
	fs.ReadDirFS
	fs.ReadFileFS
}

type Ident string

// TypeID is a base type or a reference to a declared type. Multi-word base
// types ("unsigned  int") are normalized to single spaces.
type TypeID string

func (t *TypeID) Capture(values []string) error {
	*t = TypeID(strings.Join(strings.Fields(strings.Join(values, " ")), " "))
	return nil
}

type FileAST struct {
	Namespaces []NamespaceStmt `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position
}

func (s *Statement) GetPos() *lexer.Position {
	return &s.Pos
}

// BracketStart is a construct header: a name followed by an opening brace
type BracketStart struct {
	Pos  lexer.Position
	Name Ident `parser:"@Ident '{'"`
}

type NamespaceStmt struct {
	Statement
	Header BracketStart `parser:"'namespace' @@"`
	Decls  []DeclStmt   `parser:"@@* '}' ';'?"`
}

type DeclStmt struct {
	Typedef *TypedefStmt `parser:"@@"`
	Struct  *StructStmt  `parser:"| @@"`
	Enum    *EnumStmt    `parser:"| @@"`
	Union   *UnionStmt   `parser:"| @@"`
}

type TypedefStmt struct {
	Statement
	Decl TypeDecl `parser:"'typedef' @@ ';'"`
}

type StructStmt struct {
	Statement
	Table  bool         `parser:"@'table'?"`
	Header BracketStart `parser:"'struct' @@"`
	Props  []TypeDecl   `parser:"(@@ ';')* '}' ';'?"`
}

type EnumStmt struct {
	Statement
	Header BracketStart    `parser:"'enum' @@"`
	Values []EnumValueStmt `parser:"@@ (',' @@)* ','? '}' ';'?"`
}

type EnumValueStmt struct {
	Statement
	Name  Ident  `parser:"@Ident '='"`
	Value string `parser:"@Int"`
}

type UnionStmt struct {
	Statement
	Name   Ident      `parser:"'union' @Ident"`
	Switch SwitchStmt `parser:"@@ ';'?"`
}

// SwitchStmt captures the discriminant type and the discriminant field name
// as separate grammar fields
type SwitchStmt struct {
	Statement
	Type  Ident      `parser:"'switch' '(' @Ident"`
	Field Ident      `parser:"@Ident ')' '{'"`
	Cases []CaseStmt `parser:"@@* '}'"`
}

type CaseStmt struct {
	Statement
	Value string    `parser:"'case' @(Ident | Int) ':'"`
	Void  bool      `parser:"( @'void'"`
	Decl  *TypeDecl `parser:"| @@ ) ';'"`
}

// TypeDecl is a type occurrence with an optional array suffix and an
// optional name. The suffix is accepted either before or after the name:
// `string<16> b` and `string b<16>` are the same declaration.
type TypeDecl struct {
	Statement
	Type       TypeID       `parser:"@(Unsigned | Ident)"`
	Array      *ArraySuffix `parser:"@@?"`
	Name       Ident        `parser:"@Ident?"`
	NameSuffix *ArraySuffix `parser:"@@?"`
}

type ArraySuffix struct {
	Statement
	Unbounded bool    `parser:"@Unbounded"`
	Variable  *string `parser:"| '<' @Int '>'"`
	Fixed     *string `parser:"| '[' @Int ']'"`
}
