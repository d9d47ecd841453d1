/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package codegen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"text/template"

	"golang.org/x/exp/maps"
	"golang.org/x/tools/imports"

	"github.com/voedger/xdrgen/pkg/typemap"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

//go:embed templates/*
var templatesFS embed.FS

var variants = map[string]variant{
	TargetGo: {
		template: "go.tmpl",
		types:    goTypes,
		funcs:    goFuncs,
		format:   formatGo,
	},
	TargetRust: {
		template: "rust.tmpl",
		types:    rustTypes,
		funcs:    rustFuncs,
	},
	TargetCommonJS: {
		template: "js.tmpl",
		types:    jsTypes,
		funcs:    jsFuncs(false),
	},
	TargetJS: {
		template: "js.tmpl",
		types:    jsTypes,
		funcs:    jsFuncs(true),
	},
}

func targetsImpl() []string {
	res := maps.Keys(variants)
	slices.Sort(res)
	return res
}

func canonicalImpl(target string) (string, error) {
	if alias, ok := targetAliases[target]; ok {
		target = alias
	}
	if _, ok := variants[target]; !ok {
		return "", ErrUnknownTargetName(target)
	}
	return target, nil
}

func newImpl(target string, opts Options) (Renderer, error) {
	canonical, err := canonicalImpl(target)
	if err != nil {
		return nil, err
	}
	v := variants[canonical]
	if opts.Header == "" {
		opts.Header = DefaultHeader
	}
	if opts.GoPackage == "" {
		opts.GoPackage = DefaultGoPackage
	}
	return &renderer{
		target:  canonical,
		variant: v,
		typeMap: typemap.Map(v.types).Merge(opts.TypeMap),
		opts:    opts,
	}, nil
}

func (r *renderer) Target() string {
	return r.target
}

func (r *renderer) TypeMap() typemap.Map {
	return maps.Clone(r.typeMap)
}

func (r *renderer) Render(ns xdrdef.Namespaces) ([]byte, error) {
	if err := r.checkDeclaredNames(ns); err != nil {
		return nil, errRender(r.target, err)
	}
	data := templateData{
		Header:     r.opts.Header,
		Package:    r.opts.GoPackage,
		Namespaces: typemap.Apply(ns, r.typeMap),
	}
	src, err := r.fillInTemplate(data)
	if err != nil {
		return nil, errRender(r.target, err)
	}
	if r.variant.format != nil {
		if src, err = r.variant.format(src); err != nil {
			return nil, errRender(r.target, err)
		}
	}
	return src, nil
}

func (r *renderer) fillInTemplate(data templateData) ([]byte, error) {
	templates, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		return nil, fmt.Errorf("failed to read templates directory: %w", err)
	}

	t, err := template.New(r.variant.template).Funcs(r.variant.funcs(r)).ParseFS(templates, r.variant.template)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	var filledTemplate bytes.Buffer
	if err := t.ExecuteTemplate(&filledTemplate, r.variant.template, data); err != nil {
		return nil, fmt.Errorf("failed to fill template: %w", err)
	}
	return filledTemplate.Bytes(), nil
}

// primitive returns the target spelling of the IDL primitive
// checkDeclaredNames rejects declarations spelled like a mapped primitive:
// references to them could not be told apart from the primitive
func (r *renderer) checkDeclaredNames(ns xdrdef.Namespaces) error {
	errs := make([]error, 0)
	check := func(name string) {
		if r.isBuiltin(name) {
			errs = append(errs, ErrNameClashName(name, r.target))
		}
	}
	for _, n := range ns {
		for _, td := range n.Typedefs {
			check(td.Def.Name)
		}
		for _, s := range n.Structs {
			check(s.Name)
		}
		for _, e := range n.Enums {
			check(e.Name)
		}
		for _, u := range n.Unions {
			check(u.Name)
		}
	}
	return errors.Join(errs...)
}

func (r *renderer) primitive(name string) string {
	return r.typeMap.Lookup(name)
}

// isBuiltin reports whether the mapped type name is a spelling of a primitive
func (r *renderer) isBuiltin(typeName string) bool {
	if typeName == r.primitive(xdrdef.String) || typeName == r.primitive(xdrdef.Opaque) {
		return true
	}
	for _, v := range r.typeMap {
		if v == typeName {
			return true
		}
	}
	return false
}

func formatGo(src []byte) ([]byte, error) {
	return imports.Process("xdr_generated.go", src, nil)
}

// length returns the array length to emit, unboundedLen for `<>`
func length(s xdrdef.ArraySize) uint32 {
	if s.Unbounded {
		return unboundedLen
	}
	return s.Len
}
