// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"strings"

	"templator.dev/templator/pkg/filepos"
)

type DirectiveKind int

const (
	DirectiveValue DirectiveKind = iota
	DirectiveSectionOpen
	DirectiveInvertedSectionOpen
	DirectiveSectionClose
)

// Directive is the parsed form of a directive span.
type Directive struct {
	Kind     DirectiveKind
	Path     string
	Position *filepos.Position
}

// ParseDirective interprets a directive span's expression. A leading '#'
// opens a section, '^' opens an inverted section, '/' closes the innermost
// section; anything else is a value substitution.
func ParseDirective(span Span) Directive {
	expr := strings.TrimSpace(span.Content)

	kind := DirectiveValue
	switch {
	case strings.HasPrefix(expr, "#"):
		kind = DirectiveSectionOpen
		expr = expr[1:]
	case strings.HasPrefix(expr, "^"):
		kind = DirectiveInvertedSectionOpen
		expr = expr[1:]
	case strings.HasPrefix(expr, "/"):
		kind = DirectiveSectionClose
		expr = expr[1:]
	}

	return Directive{Kind: kind, Path: strings.TrimSpace(expr), Position: span.Position}
}
