/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

const (
	// targetSchema passed to `gen -l` produces the flattened schema
	targetSchema       = "schema"
	stdinFileName      = "<stdin>"
	outputPermissions  = 0644
	diffTimeoutSeconds = 5
)

const (
	flagOutput = "output"
	flagTarget = "lang"
	flagFormat = "format"
	flagTable  = "table"
	flagAll    = "all"
)
