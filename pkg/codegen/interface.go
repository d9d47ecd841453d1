/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package codegen

import (
	"github.com/voedger/xdrgen/pkg/typemap"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

// Renderer emits source code of one target language from a compiled unit.
//
// Render never modifies ns, so several renderers may share one AST
// concurrently.
type Renderer interface {
	// Target returns the canonical target name
	Target() string

	// TypeMap returns primitive spellings used by the target, overrides included
	TypeMap() typemap.Map

	Render(ns xdrdef.Namespaces) ([]byte, error)
}
