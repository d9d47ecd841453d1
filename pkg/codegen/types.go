/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package codegen

import (
	"text/template"

	"github.com/voedger/xdrgen/pkg/typemap"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

type Options struct {
	// Header replaces DefaultHeader. Must be a comment in the target language
	Header string
	// GoPackage is the package clause of Go output, DefaultGoPackage if empty
	GoPackage string
	// TypeMap overrides primitive spellings of the target
	TypeMap map[string]string
}

// variant describes one target
type variant struct {
	template string
	types    map[string]string
	funcs    func(r *renderer) template.FuncMap
	// format post-processes rendered text, may be nil
	format func(src []byte) ([]byte, error)
}

type renderer struct {
	target  string
	variant variant
	typeMap typemap.Map
	opts    Options
}

// templateData is passed to every target template
type templateData struct {
	Header     string
	Package    string
	Namespaces xdrdef.Namespaces
}
