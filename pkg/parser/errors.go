/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var (
	ErrGrammar = errors.New("syntax error")
	ErrShape   = errors.New("malformed declaration")

	ErrDirContainsNoSchemaFiles = errors.New("directory contains no IDL files")
)

// Shape errors
var (
	ErrMissingName       = errors.New("name expected")
	ErrMissingType       = errors.New("type expected")
	ErrSwitchHeader      = errors.New("switch header must name the discriminant type and field")
	ErrEmptyStatement    = errors.New("statement has no declaration")
	ErrEmptyCase         = errors.New("case has neither a type nor void")
	ErrEmptyArraySuffix  = errors.New("array suffix has no bound kind")
	ErrInvalidArrayBound = errors.New("invalid array bound")
	ErrZeroArrayBound    = errors.New("array bound must be positive")
	ErrDoubleArraySuffix = errors.New("more than one array suffix")
	ErrInvalidEnumValue  = errors.New("invalid enum value")
)

// Analysis errors
var (
	ErrUndefinedType = errors.New("undefined type")
	ErrRedeclared    = errors.New("redeclared")
	ErrReservedName  = errors.New("name of a base type cannot be declared")
	ErrSwitchNotEnum = errors.New("switch type is not an enum")
)

// GrammarError is returned when the source does not conform to the grammar.
// No AST is produced.
type GrammarError struct {
	Pos lexer.Position
	Msg string
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Pos, ErrGrammar, e.Msg)
}

func (e *GrammarError) Unwrap() error {
	return ErrGrammar
}

// ShapeError is returned when a parse tree node has children that do not
// match the shape expected for its rule
type ShapeError struct {
	Pos lexer.Position
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Pos, ErrShape, e.Err)
}

func (e *ShapeError) Unwrap() []error {
	return []error{ErrShape, e.Err}
}

func shapeErrorAt(pos *lexer.Position, err error) error {
	return &ShapeError{Pos: *pos, Err: err}
}

func ErrInvalidBound(literal string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArrayBound, literal)
}

func ErrEnumValue(name, literal string) error {
	return fmt.Errorf("%w %s = %s", ErrInvalidEnumValue, name, literal)
}

func ErrUndefined(owner, field, typeName string) error {
	return fmt.Errorf("%s.%s: %w %s", owner, field, ErrUndefinedType, typeName)
}

func ErrNameReserved(name, namespace string) error {
	return fmt.Errorf("%s in namespace %s: %w", name, namespace, ErrReservedName)
}

func ErrNameRedeclared(name, namespace string) error {
	return fmt.Errorf("%s in namespace %s: %w", name, namespace, ErrRedeclared)
}

func ErrSwitchTypeNotEnum(union, typeName string) error {
	return fmt.Errorf("union %s: %w: %s", union, ErrSwitchNotEnum, typeName)
}
