/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

import (
	"errors"
	"path"
	"path/filepath"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/voedger/xdrgen/pkg/xdrdef"
)

var idlLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*|(?s:/\*.*?\*/)`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Unsigned", Pattern: `unsigned[ \t\r\n]+(int|hyper)\b`},
	{Name: "Unbounded", Pattern: unboundedMarker},
	{Name: "Int", Pattern: `-?(0[xX][0-9a-fA-F]+|\d+)`},
	{Name: "Ident", Pattern: `[a-zA-Z_]\w*`},
	{Name: "Punct", Pattern: `[{}()\[\]<>;:=,]`},
})

var idlParser = participle.MustBuild[FileAST](
	participle.Lexer(idlLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

func parseImpl(fileName string, content string) (*FileAST, error) {
	ast, err := idlParser.ParseString(fileName, content)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &GrammarError{Pos: perr.Position(), Msg: perr.Message()}
		}
		return nil, &GrammarError{Pos: lexer.Position{Filename: fileName}, Msg: err.Error()}
	}
	return ast, nil
}

func parseFSImpl(fs IReadFS, dir string) ([]*FileSchemaAST, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	schemas := make([]*FileSchemaAST, 0)
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != IDLFileExt {
			continue
		}
		fp := path.Join(dir, entry.Name())
		bytes, err := fs.ReadFile(fp)
		if err != nil {
			return nil, err
		}
		schema, err := parseImpl(entry.Name(), string(bytes))
		if err != nil {
			return nil, err
		}
		schemas = append(schemas, &FileSchemaAST{
			FileName: entry.Name(),
			Ast:      schema,
		})
	}
	if len(schemas) == 0 {
		return nil, ErrDirContainsNoSchemaFiles
	}
	return schemas, nil
}

func parseDirImpl(fs IReadFS, dir string) (xdrdef.Namespaces, error) {
	asts, err := parseFSImpl(fs, dir)
	if err != nil {
		return nil, err
	}
	return buildImpl(asts)
}
