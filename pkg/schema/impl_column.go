/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package schema

import "fmt"

func (c *Basic) Kind() ColumnKind   { return KindBasic }
func (c *Array) Kind() ColumnKind   { return KindArray }
func (c *Struct) Kind() ColumnKind  { return KindStruct }
func (c *Typedef) Kind() ColumnKind { return KindTypedef }

func (c *Basic) ColumnName() string   { return c.Name }
func (c *Array) ColumnName() string   { return c.Name }
func (c *Struct) ColumnName() string  { return c.Name }
func (c *Typedef) ColumnName() string { return c.Name }

func (t BasicType) String() string {
	if int(t) < len(basicTypeNames) && basicTypeNames[t] != "" {
		return basicTypeNames[t]
	}
	return fmt.Sprintf("BasicType(%d)", t)
}

func (t BasicType) MarshalText() ([]byte, error) {
	if int(t) >= len(basicTypeNames) || basicTypeNames[t] == "" {
		return nil, fmt.Errorf("invalid basic type %d", t)
	}
	return []byte(basicTypeNames[t]), nil
}

// BasicTypeOf maps an IDL primitive name to its basic type
func BasicTypeOf(typeName string) (BasicType, bool) {
	bt, ok := basicTypes[typeName]
	return bt, ok
}

// Walk calls visit for the column and all its descendants, depth first.
// depth is zero for col itself.
func Walk(col Column, visit func(c Column, depth int)) {
	walk(col, 0, visit)
}

func walk(col Column, depth int, visit func(c Column, depth int)) {
	if col == nil {
		return
	}
	visit(col, depth)
	switch c := col.(type) {
	case *Array:
		walk(c.Child, depth+1, visit)
	case *Typedef:
		walk(c.Child, depth+1, visit)
	case *Struct:
		for _, child := range c.Children {
			walk(child, depth+1, visit)
		}
	}
}
