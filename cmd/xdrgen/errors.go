/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package main

import (
	"errors"
	"fmt"
)

var (
	ErrOutputOutdated  = errors.New("generated output is outdated")
	ErrCheckNeedsFile  = errors.New("--check requires an output file")
	ErrUnsupportedDump = errors.New("unsupported parse format")
)

func errOutdated(path string) error {
	return fmt.Errorf("%w: %s", ErrOutputOutdated, path)
}
