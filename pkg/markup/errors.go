// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"fmt"

	"templator.dev/templator/pkg/filepos"
)

// RenderError is a malformed-directive failure, carrying the offending
// expression and its position within the template.
type RenderError struct {
	Msg      string
	Expr     string
	Position *filepos.Position
}

func NewRenderError(msg, expr string, pos *filepos.Position) *RenderError {
	return &RenderError{Msg: msg, Expr: expr, Position: pos}
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s '%s' (%s)", e.Msg, e.Expr, e.Position.AsCompactString())
}
