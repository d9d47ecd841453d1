/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package schema

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnresolvedType = errors.New("unresolved type")
	ErrCyclicType     = errors.New("type contains itself")
	ErrUnknownTable   = errors.New("unknown table")
	ErrUnknownFormat  = errors.New("unknown schema format")
)

// ResolutionError reports a field whose type cannot be flattened. Field is
// the dotted path from the table column to the failed property.
type ResolutionError struct {
	Table    string
	Field    string
	TypeName string
	Err      error
}

func (e *ResolutionError) Error() string {
	var b strings.Builder
	if e.Table != "" {
		fmt.Fprintf(&b, "table %s: ", e.Table)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, "field %s: ", e.Field)
	}
	b.WriteString(e.Err.Error())
	if e.TypeName != "" {
		fmt.Fprintf(&b, " %q", e.TypeName)
	}
	return b.String()
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}

func ErrUnknownTableName(name string) error {
	return &ResolutionError{Table: name, Err: ErrUnknownTable}
}

func errUnknownFormat(f Format) error {
	return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
}
