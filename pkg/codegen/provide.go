/*
* Copyright (c) 2024-present unTill Pro, Ltd.
 */

// Package codegen renders compiled IDL units as source code of target
// languages.
package codegen

// New returns the renderer of the target. Aliases (`node`, `golang`) are
// accepted. Returns ErrUnknownTarget for anything else
func New(target string, opts Options) (Renderer, error) {
	return newImpl(target, opts)
}

// Targets returns canonical target names, sorted
func Targets() []string {
	return targetsImpl()
}

// Canonical resolves aliases. Returns ErrUnknownTarget if target is not known
func Canonical(target string) (string, error) {
	return canonicalImpl(target)
}
