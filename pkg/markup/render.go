// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"fmt"
	"strings"

	"templator.dev/templator/pkg/orderedmap"
)

// Renderer substitutes directives found between one delimiter pair with
// values resolved from a context. A Renderer holds no mutable state across
// calls and may be shared freely.
type Renderer struct {
	delims DelimiterPair
}

func NewRenderer(delims DelimiterPair) *Renderer {
	return &Renderer{delims: delims}
}

// Render produces the fully rendered template, or fails with a RenderError
// identifying the offending directive. On failure no partial output is
// returned. associatedName is used in error positions only.
func (r *Renderer) Render(template string, ctx interface{}, associatedName string) (string, error) {
	spans, err := scanAll(template, r.delims, associatedName)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	err = r.renderRange(&out, spans, 0, len(spans), NewScope(ctx))
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// Validate scans the template and checks directive well-formedness (section
// nesting and close matching) without resolving any values.
func (r *Renderer) Validate(template string, associatedName string) error {
	spans, err := scanAll(template, r.delims, associatedName)
	if err != nil {
		return err
	}

	var stack []Directive
	for _, span := range spans {
		if span.Type != SpanDirective {
			continue
		}
		dir := ParseDirective(span)
		switch dir.Kind {
		case DirectiveSectionOpen, DirectiveInvertedSectionOpen:
			stack = append(stack, dir)
		case DirectiveSectionClose:
			if len(stack) == 0 {
				return NewRenderError("Unexpected section close", dir.Path, dir.Position)
			}
			top := stack[len(stack)-1]
			if dir.Path != top.Path {
				return NewRenderError(fmt.Sprintf("Mismatched section close (expected '%s')", top.Path), dir.Path, dir.Position)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return NewRenderError("Unclosed section", top.Path, top.Position)
	}
	return nil
}

func (r *Renderer) renderRange(out *strings.Builder, spans []Span, start, end int, scope *Scope) error {
	i := start
	for i < end {
		span := spans[i]
		if span.Type == SpanLiteral {
			out.WriteString(span.Content)
			i++
			continue
		}

		dir := ParseDirective(span)
		switch dir.Kind {
		case DirectiveValue:
			str, err := FormatValue(scope.Resolve(dir.Path))
			if err != nil {
				return NewRenderError(err.Error(), dir.Path, dir.Position)
			}
			out.WriteString(str)
			i++

		case DirectiveSectionClose:
			return NewRenderError("Unexpected section close", dir.Path, dir.Position)

		case DirectiveSectionOpen, DirectiveInvertedSectionOpen:
			bodyEnd, err := findSectionEnd(spans, i, dir)
			if err != nil {
				return err
			}
			err = r.renderSection(out, spans, i+1, bodyEnd, scope, dir)
			if err != nil {
				return err
			}
			i = bodyEnd + 1
		}
	}
	return nil
}

func (r *Renderer) renderSection(out *strings.Builder, spans []Span, bodyStart, bodyEnd int, scope *Scope, dir Directive) error {
	val := scope.Resolve(dir.Path)

	if dir.Kind == DirectiveInvertedSectionOpen {
		if IsTruthy(val) {
			return nil
		}
		return r.renderRange(out, spans, bodyStart, bodyEnd, scope)
	}

	switch typedVal := val.(type) {
	case []interface{}:
		// body rendered once per element, element pushed as innermost scope
		for _, item := range typedVal {
			err := r.renderRange(out, spans, bodyStart, bodyEnd, scope.Push(item))
			if err != nil {
				return err
			}
		}
		return nil

	case *orderedmap.Map:
		if typedVal.Len() == 0 {
			return nil
		}
		return r.renderRange(out, spans, bodyStart, bodyEnd, scope.Push(typedVal))

	default:
		if !IsTruthy(val) {
			return nil
		}
		// truthy scalar renders the body once without a scope push
		return r.renderRange(out, spans, bodyStart, bodyEnd, scope)
	}
}

// findSectionEnd locates the close directive matching the section opened at
// openIdx, accounting for nested sections. Every close must name the
// innermost open section.
func findSectionEnd(spans []Span, openIdx int, open Directive) (int, error) {
	stack := []Directive{open}

	for i := openIdx + 1; i < len(spans); i++ {
		if spans[i].Type != SpanDirective {
			continue
		}
		dir := ParseDirective(spans[i])
		switch dir.Kind {
		case DirectiveSectionOpen, DirectiveInvertedSectionOpen:
			stack = append(stack, dir)
		case DirectiveSectionClose:
			top := stack[len(stack)-1]
			if dir.Path != top.Path {
				return 0, NewRenderError(fmt.Sprintf("Mismatched section close (expected '%s')", top.Path), dir.Path, dir.Position)
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i, nil
			}
		}
	}

	return 0, NewRenderError("Unclosed section", open.Path, open.Position)
}
