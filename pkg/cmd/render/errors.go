// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"errors"
)

// Exit statuses are distinct per failure category; 1 covers usage and any
// uncategorized failure.
const (
	ExitCodeConfigLoad   = 2
	ExitCodeContextParse = 3
	ExitCodeTemplateRead = 4
	ExitCodeRender       = 5
	ExitCodeOutputWrite  = 6
)

type categorizedError struct {
	code int
	err  error
}

func (e categorizedError) Error() string { return e.err.Error() }
func (e categorizedError) Unwrap() error { return e.err }
func (e categorizedError) ExitCode() int { return e.code }

func NewConfigLoadError(err error) error   { return categorizedError{ExitCodeConfigLoad, err} }
func NewContextParseError(err error) error { return categorizedError{ExitCodeContextParse, err} }
func NewTemplateReadError(err error) error { return categorizedError{ExitCodeTemplateRead, err} }
func NewRenderFailedError(err error) error { return categorizedError{ExitCodeRender, err} }
func NewOutputWriteError(err error) error  { return categorizedError{ExitCodeOutputWrite, err} }

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	var coded interface{ ExitCode() int }
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	return 1
}
