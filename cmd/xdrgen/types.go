/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import "github.com/voedger/xdrgen/pkg/config"

type xdrgenParams struct {
	ConfigFile string
	cfg        *config.Config
}

type genParams struct {
	Output    string
	Target    string
	GoPackage string
	Check     bool
}

type schemaParams struct {
	Output string
	Format string
	Tables []string
	All    bool
}

type parseParams struct {
	Output string
	Format string
}
