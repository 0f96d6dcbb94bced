// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"strconv"
	"strings"

	"templator.dev/templator/pkg/orderedmap"
)

type missing struct{}

// Missing is the sentinel returned by Resolve when a path cannot be found in
// any scope. A missing value renders as an empty string and is falsy; it is
// not an error.
var Missing = missing{}

// Scope is one level of an immutable context stack. Section directives push
// child scopes; lookup proceeds innermost-first.
type Scope struct {
	value  interface{}
	parent *Scope
}

func NewScope(value interface{}) *Scope {
	return &Scope{value: value}
}

func (s *Scope) Push(value interface{}) *Scope {
	return &Scope{value: value, parent: s}
}

// Value returns the innermost scope value (the path "." resolves to this).
func (s *Scope) Value() interface{} { return s.value }

// Resolve evaluates a path expression against the scope stack. The first
// segment is looked up innermost-first; once anchored, the remaining
// segments resolve strictly within the found value (no further fallback).
func (s *Scope) Resolve(path string) interface{} {
	if path == "." {
		return s.value
	}

	segments := splitPath(path)
	if len(segments) == 0 {
		return Missing
	}

	for scope := s; scope != nil; scope = scope.parent {
		val, found := lookupSegment(scope.value, segments[0])
		if !found {
			continue
		}
		for _, seg := range segments[1:] {
			val, found = lookupSegment(val, seg)
			if !found {
				return Missing
			}
		}
		return val
	}

	return Missing
}

// splitPath splits "a.b.c", "items.0.name" and "items[0].name" into
// segments. Empty segments are dropped.
func splitPath(path string) []string {
	var segments []string
	var curr strings.Builder

	flush := func() {
		if curr.Len() > 0 {
			segments = append(segments, curr.String())
			curr.Reset()
		}
	}

	for _, ch := range path {
		switch ch {
		case '.', '[', ']':
			flush()
		default:
			curr.WriteRune(ch)
		}
	}
	flush()

	return segments
}

func lookupSegment(val interface{}, segment string) (interface{}, bool) {
	switch typedVal := val.(type) {
	case *orderedmap.Map:
		return typedVal.Get(segment)

	case []interface{}:
		idx, err := strconv.Atoi(segment)
		if err != nil || idx < 0 || idx >= len(typedVal) {
			return nil, false
		}
		return typedVal[idx], true

	default:
		// indexing into a scalar resolves to missing
		return nil, false
	}
}
