/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/voedger/xdrgen/pkg/logger"
)

func writeConfig(t *testing.T, dir, content string) string {
	path := filepath.Join(dir, ConfigName+".yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func Test_Defaults(t *testing.T) {
	require := require.New(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(err)
	require.Equal(DefaultTarget, cfg.Target)
	require.Equal(DefaultFormat, cfg.Format)
	require.Equal(DefaultLogLevel, cfg.LogLevel)
	require.Empty(cfg.Output)
	require.Empty(cfg.Tables)
	require.False(cfg.AllTables)
	require.Nil(cfg.TypeMap("go"))
}

func Test_ConfigFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	writeConfig(t, dir, `
target: rust
output: out.rs
format: yaml
go_package: wire
tables: [Reading, Path]
all_tables: true
log_level: verbose
type_maps:
  go:
    hyper: int
    unsigned hyper: uint
`)
	t.Chdir(dir)

	cfg, err := Load("")
	require.NoError(err)
	require.Equal("rust", cfg.Target)
	require.Equal("out.rs", cfg.Output)
	require.Equal("yaml", cfg.Format)
	require.Equal("wire", cfg.GoPackage)
	require.Equal([]string{"Reading", "Path"}, cfg.Tables)
	require.True(cfg.AllTables)
	require.Equal(map[string]string{"hyper": "int", "unsigned hyper": "uint"}, cfg.TypeMap("go"))

	defer logger.SetLogLevelWithRestore(logger.LogLevelInfo)()
	require.NoError(cfg.ApplyLogLevel())
	require.True(logger.IsVerbose())
}

func Test_ExplicitPath(t *testing.T) {
	require := require.New(t)

	path := writeConfig(t, t.TempDir(), "target: commonjs\n")
	cfg, err := Load(path)
	require.NoError(err)
	require.Equal("commonjs", cfg.Target)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(err, os.ErrNotExist)
}

func Test_Env(t *testing.T) {
	require := require.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("XDRGEN_TARGET", "js")
	t.Setenv("XDRGEN_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(err)
	require.Equal("js", cfg.Target)
	require.Equal("json", cfg.Format)
}

func Test_Validation(t *testing.T) {
	cases := []struct {
		name    string
		content string
		err     error
	}{
		{"format", "format: xml\n", ErrInvalidFormat},
		{"log level", "log_level: loud\n", ErrInvalidLogLevel},
		{"primitive", "type_maps:\n  go:\n    quadruple: float128\n", ErrInvalidPrimitive},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), c.content))
			require.ErrorIs(t, err, c.err)
		})
	}
}
