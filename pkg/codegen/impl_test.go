/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package codegen

import (
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/token"
	gotypes "go/types"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	xdrparser "github.com/voedger/xdrgen/pkg/parser"
	"github.com/voedger/xdrgen/pkg/xdrdef"
)

const telemetry = `namespace telemetry {
	enum SensorKind { THERMAL = 2, OPTICAL = 5, NONE = 0x10, };
	typedef opaque Hash[32];
	typedef unsigned hyper Timestamp;
	typedef string Label<64>;
	typedef Reading Batch<>;
	struct Reading {
		Timestamp at;
		unsigned int sensor;
		float values<16>;
		Hash digest;
		boolean valid;
		string note<>;
	}
	union Payload switch (SensorKind kind) {
		case THERMAL: int celsius;
		case OPTICAL: Reading reading;
		case NONE: void;
	};
}`

func parse(t *testing.T, src string) xdrdef.Namespaces {
	ns, err := xdrparser.ParseString("test.x", src)
	require.NoError(t, err)
	return ns
}

func render(t *testing.T, target string, ns xdrdef.Namespaces) string {
	r, err := New(target, Options{})
	require.NoError(t, err)
	out, err := r.Render(ns)
	require.NoError(t, err)
	return string(out)
}

func Test_Targets(t *testing.T) {
	require := require.New(t)

	require.Equal([]string{TargetCommonJS, TargetGo, TargetJS, TargetRust}, Targets())

	for _, target := range Targets() {
		r, err := New(target, Options{})
		require.NoError(err)
		require.Equal(target, r.Target())
	}

	t.Run("aliases", func(t *testing.T) {
		r, err := New("node", Options{})
		require.NoError(err)
		require.Equal(TargetCommonJS, r.Target())

		r, err = New("golang", Options{})
		require.NoError(err)
		require.Equal(TargetGo, r.Target())
	})

	t.Run("canonical", func(t *testing.T) {
		c, err := Canonical("node")
		require.NoError(err)
		require.Equal(TargetCommonJS, c)

		c, err = Canonical(TargetRust)
		require.NoError(err)
		require.Equal(TargetRust, c)

		_, err = Canonical("schema")
		require.ErrorIs(err, ErrUnknownTarget)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := New("cobol", Options{})
		require.ErrorIs(err, ErrUnknownTarget)
		require.Contains(err.Error(), "cobol")
		require.Contains(err.Error(), "commonjs, go, js, rust")
	})
}

func Test_TypeMap(t *testing.T) {
	require := require.New(t)

	r, err := New(TargetGo, Options{TypeMap: map[string]string{xdrdef.Hyper: "int"}})
	require.NoError(err)

	m := r.TypeMap()
	require.Equal("int", m[xdrdef.Hyper])
	require.Equal("int32", m[xdrdef.Int])
	require.Equal("byte", m[xdrdef.Opaque])
	require.NotContains(m, xdrdef.String)

	m[xdrdef.Int] = "changed"
	require.Equal("int32", r.TypeMap()[xdrdef.Int], "returned map is a copy")

	rust, err := New(TargetRust, Options{})
	require.NoError(err)
	require.Len(rust.TypeMap(), len(xdrdef.Primitives()))
}

func Test_Go(t *testing.T) {
	require := require.New(t)

	out := render(t, TargetGo, parse(t, telemetry))

	formatted, err := format.Source([]byte(out))
	require.NoError(err)
	require.Equal(string(formatted), out, "output is gofmt-ed")
	require.True(strings.HasPrefix(out, DefaultHeader))

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "xdr_generated.go", out, parser.ParseComments)
	require.NoError(err)
	require.Equal(DefaultGoPackage, file.Name.Name)

	types := map[string]string{}
	funcs := map[string]bool{}
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					types[ts.Name.Name] = out[fset.Position(ts.Type.Pos()).Offset:fset.Position(ts.Type.End()).Offset]
				}
			}
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				recv := d.Recv.List[0].Type
				if star, ok := recv.(*ast.StarExpr); ok {
					recv = star.X
				}
				name = recv.(*ast.Ident).Name + "." + name
			}
			funcs[name] = true
		}
	}

	require.Equal("[32]byte", types["Hash"])
	require.Equal("uint64", types["Timestamp"])
	require.Equal("string", types["Label"])
	require.Equal("[]Reading", types["Batch"])
	require.Equal("int32", types["SensorKind"])
	require.Contains(squash(types["Reading"]), "Values []float32 `xdrmaxsize:\"16\"`")
	require.Contains(squash(types["Reading"]), "At Timestamp")
	require.Contains(squash(types["Reading"]), "Valid bool Note string }")
	require.Equal("struct { Kind SensorKind Celsius *int32 Reading *Reading }", squash(types["Payload"]))

	for _, f := range []string{
		"Marshal", "Unmarshal", "NewPayload",
		"Label.XDRMaxSize",
		"Hash.MarshalBinary", "Hash.UnmarshalBinary",
		"Reading.MarshalBinary", "SensorKind.ValidEnum", "SensorKind.String",
		"Payload.SwitchFieldName", "Payload.ArmForSwitch",
		"Payload.GetCelsius", "Payload.MustCelsius", "Payload.GetReading", "Payload.MustReading",
	} {
		require.True(funcs[f], f)
	}
	require.False(funcs["Batch.XDRMaxSize"], "unbounded arrays have no max size")

	require.Contains(squash(out), "SensorKindNONE SensorKind = 16")
	require.Contains(squash(out), `case SensorKindNONE: return "", true`)
	require.Contains(out, `"fmt"`)
	require.Contains(out, `xdr "github.com/stellar/go-xdr/xdr3"`)
	require.Empty(typeCheck(t, out))
}

func Test_GoFieldNamesAreExported(t *testing.T) {
	require := require.New(t)

	out := render(t, TargetGo, parse(t, `namespace ns {
		struct S { string string<8>; int bool; opaque byte[4]; }
	}`))
	require.Contains(squash(out), "type S struct { String string `xdrmaxsize:\"8\"` Bool int32 Byte [4]byte }")
	require.Empty(typeCheck(t, out))
}

func Test_GoSharedArms(t *testing.T) {
	require := require.New(t)

	out := render(t, TargetGo, parse(t, `namespace ns {
		enum E { A = 0, B = 1, C = 2 }
		union U switch (E kind) { case A: int val; case B: int val; case C: void; }
	}`))
	require.Contains(squash(out), "type U struct { Kind E Val *int32 }")
	require.Equal(1, strings.Count(out, "func (u U) MustVal()"))
	require.Equal(1, strings.Count(out, "func (u U) GetVal()"))
	require.Contains(squash(out), `case EA: return "Val", true case EB: return "Val", true case EC: return "", true`)
	require.Empty(typeCheck(t, out))
}

func Test_GoNamelessArms(t *testing.T) {
	require := require.New(t)

	out := render(t, TargetGo, parse(t, `namespace ns {
		enum E { A = 0, B = 1 }
		union U switch (E kind) { case A: int; case 1: string<8>; }
	}`))
	require.Contains(squash(out), "type U struct { Kind E ArmA *int32 ArmV1 *string }")
	require.Contains(out, "func (u U) MustArmA() int32")
	require.Contains(out, "func (u U) GetArmV1() (result string, ok bool)")
	require.Empty(typeCheck(t, out))

	rust := render(t, TargetRust, parse(t, `namespace ns {
		enum E { A = 0, B = 1 }
		union U switch (E kind) { case A: int; case B: void; }
	}`))
	require.Contains(rust, "pub enum U {\n    A(i32),\n    B(()),\n}")
}

func Test_NameClash(t *testing.T) {
	ns := parse(t, `namespace ns {
		struct byte { int a; }
		typedef int u8;
		struct S { byte b; }
	}`)

	t.Run("go", func(t *testing.T) {
		require := require.New(t)
		r, err := New(TargetGo, Options{})
		require.NoError(err)
		_, err = r.Render(ns)
		require.ErrorIs(err, ErrNameClash)
		require.Contains(err.Error(), "byte:")
		require.NotContains(err.Error(), "u8:")
	})

	t.Run("rust", func(t *testing.T) {
		require := require.New(t)
		r, err := New(TargetRust, Options{})
		require.NoError(err)
		_, err = r.Render(ns)
		require.ErrorIs(err, ErrNameClash)
		require.Contains(err.Error(), "u8:")
		require.NotContains(err.Error(), "byte:")
	})

	t.Run("js", func(t *testing.T) {
		require := require.New(t)
		out := render(t, TargetJS, ns)
		require.Contains(out, "export function byte()")

		r, err := New(TargetJS, Options{})
		require.NoError(err)
		_, err = r.Render(parse(t, `namespace ns { struct Int { int a; } }`))
		require.ErrorIs(err, ErrNameClash)
	})
}

func Test_GoOptions(t *testing.T) {
	require := require.New(t)

	r, err := New(TargetGo, Options{
		GoPackage: "wire",
		Header:    "// Generated for tests",
		TypeMap:   map[string]string{xdrdef.Int: "int"},
	})
	require.NoError(err)

	out, err := r.Render(parse(t, `namespace ns {
		struct S { int a; string b<16>; }
		enum E { A = 0, B = 1 }
		union U switch (E disc) { case 0: int val; case B: void; }
	}`))
	require.NoError(err)
	src := string(out)
	require.True(strings.HasPrefix(src, "// Generated for tests\n"))
	require.Contains(src, "package wire")
	require.Contains(squash(src), "struct { A int B string `xdrmaxsize:\"16\"` }")
	require.Contains(src, "case E(0):")
	require.Contains(src, "case EB:")

	t.Run("unused imports are dropped", func(t *testing.T) {
		out := render(t, TargetGo, parse(t, `namespace ns { struct S { int a; } }`))
		require.NotContains(out, `"fmt"`)
		require.Contains(out, `"encoding"`)
	})
}

func Test_Rust(t *testing.T) {
	require := require.New(t)

	out := render(t, TargetRust, parse(t, telemetry))

	require.Contains(out, "extern crate ex_dee_derive;")
	require.Contains(out, "pub struct Hash {\n    #[array(fixed = 32)]\n    pub t: Vec<u8>,\n}")
	require.Contains(out, "pub struct Timestamp {\n    pub t: u64,\n}")
	require.Contains(out, "pub struct Label {\n    #[array(var = 64)]\n    pub t: String,\n}")
	require.Contains(out, "    #[array(var = 16)]\n    pub values: Vec<f32>,")
	require.Contains(out, "    #[array(var = 2147483647)]\n    pub note: String,")
	require.Contains(out, "    pub valid: bool,")
	require.Contains(out, "pub enum SensorKind {\n    THERMAL = 2,\n    OPTICAL = 5,\n    NONE = 16,\n}")
	require.Contains(out, "SensorKind::THERMAL")
	require.Contains(out, "pub enum Payload {\n    THERMAL(i32),\n    OPTICAL(Reading),\n    NONE(()),\n}")
	require.Contains(out, "Payload::THERMAL(Default::default())")
}

func Test_CommonJS(t *testing.T) {
	require := require.New(t)

	out := render(t, "node", parse(t, telemetry))

	require.Contains(out, `require("xdr-js-serialize")`)
	require.Contains(out, "exports.Hash = Hash;\nfunction Hash() {\n    return new _xdrJsSerialize.default.FixedOpaque(32);\n}")
	require.Contains(out, "return new _xdrJsSerialize.default.UHyper();")
	require.Contains(out, "return new _xdrJsSerialize.default.Str('', 64);")
	require.Contains(out, "return new _xdrJsSerialize.default.VarArray(2147483647, Reading);")
	require.Contains(out, `["at", "sensor", "values", "digest", "valid", "note"]`)
	require.Contains(out, "[Timestamp(), new _xdrJsSerialize.default.UInt(), "+
		"new _xdrJsSerialize.default.VarArray(16, () => new _xdrJsSerialize.default.Float()), "+
		"Hash(), new _xdrJsSerialize.default.Bool(), new _xdrJsSerialize.default.Str('', 2147483647)]")
	require.Contains(out, "        16: \"NONE\",")
	require.Contains(out, "new _xdrJsSerialize.default.Union(\n        SensorKind(),")
	require.Contains(out, `"THERMAL": function() { return new _xdrJsSerialize.default.Int(); },`)
	require.Contains(out, `"OPTICAL": function() { return Reading(); },`)
	require.Contains(out, `"NONE": function() { return new _xdrJsSerialize.default.Void(); },`)
	require.NotContains(out, "export function")
}

func Test_JS(t *testing.T) {
	require := require.New(t)

	out := render(t, TargetJS, parse(t, telemetry))

	require.Contains(out, DefaultHeader+"\nimport XDR from \"xdr-js-serialize\";\n")
	require.Contains(out, "export function Reading() {\n    return new XDR.Struct(")
	require.Contains(out, "export function Hash() {\n    return new XDR.FixedOpaque(32);\n}")
	require.NotContains(out, "exports.")
	require.NotContains(out, "_xdrJsSerialize")
}

func Test_RenderConcurrently(t *testing.T) {
	require := require.New(t)

	ns := parse(t, telemetry)
	pristine := ns.Clone()

	var wg sync.WaitGroup
	outputs := make([][]string, 4)
	for i := range outputs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for _, target := range Targets() {
				r, err := New(target, Options{})
				if err != nil {
					panic(err)
				}
				out, err := r.Render(ns)
				if err != nil {
					panic(err)
				}
				outputs[i] = append(outputs[i], string(out))
			}
		}(i)
	}
	wg.Wait()

	for i := 1; i < len(outputs); i++ {
		require.Equal(outputs[0], outputs[i])
	}
	require.Equal(pristine, ns)
}

func Test_EmptyUnit(t *testing.T) {
	for _, target := range Targets() {
		t.Run(target, func(t *testing.T) {
			out := render(t, target, nil)
			require.True(t, strings.HasPrefix(out, DefaultHeader))
		})
	}
}

// typeCheck returns type errors of generated Go code. The xdr runtime
// module is not a dependency of this repo, its import is not checked
func typeCheck(t *testing.T, src string) []string {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "xdr_generated.go", src, 0)
	require.NoError(t, err)

	errs := []string{}
	conf := gotypes.Config{
		Importer: importer.ForCompiler(fset, "source", nil),
		Error: func(err error) {
			if msg := err.Error(); !strings.Contains(msg, "go-xdr") {
				errs = append(errs, msg)
			}
		},
	}
	_, _ = conf.Check(file.Name.Name, fset, []*ast.File{file}, nil)
	return errs
}

// squash collapses whitespace runs
func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
