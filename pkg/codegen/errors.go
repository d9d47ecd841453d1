/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

package codegen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownTarget = errors.New("unknown target")
	ErrNameClash     = errors.New("declared name is spelled like a primitive of the target")
)

func ErrUnknownTargetName(target string) error {
	return fmt.Errorf("%w %q, expected one of: %s", ErrUnknownTarget, target, strings.Join(Targets(), ", "))
}

func ErrNameClashName(name, target string) error {
	return fmt.Errorf("%s: %w %s", name, ErrNameClash, target)
}

func errRender(target string, err error) error {
	return fmt.Errorf("failed to render %s: %w", target, err)
}
