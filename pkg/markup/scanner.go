// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"strings"

	"templator.dev/templator/pkg/filepos"
)

type SpanType int

const (
	SpanLiteral SpanType = iota
	SpanDirective
)

// Span is a scanned segment of a template: either a run of literal text
// (Content emitted verbatim) or the expression found between one pair of
// delimiters (Content excludes the delimiters themselves).
type Span struct {
	Type     SpanType
	Content  string
	Position *filepos.Position
}

// Scanner splits a template into spans in a single left-to-right pass.
// It is a finite, non-restartable sequence: each Next call yields the next
// span until the input is exhausted.
//
// An open delimiter with no following close delimiter is literal text, not
// an error. The first close delimiter after an open always terminates the
// directive span.
type Scanner struct {
	delims DelimiterPair
	data   string
	name   string

	offset int
	line   int
	done   bool
}

func NewScanner(template string, delims DelimiterPair, associatedName string) (*Scanner, error) {
	err := delims.Validate()
	if err != nil {
		return nil, err
	}
	return &Scanner{delims: delims, data: template, name: associatedName, line: 1}, nil
}

// Next returns the next span; ok is false once the input is exhausted.
func (s *Scanner) Next() (Span, bool) {
	if s.done || s.offset >= len(s.data) {
		s.done = true
		return Span{}, false
	}

	rest := s.data[s.offset:]

	openIdx := strings.Index(rest, s.delims.Open)
	if openIdx < 0 {
		return s.emit(SpanLiteral, rest, len(rest)), true
	}

	exprStart := openIdx + len(s.delims.Open)
	closeIdx := strings.Index(rest[exprStart:], s.delims.Close)
	if closeIdx < 0 {
		// unterminated open delimiter; remainder is literal
		return s.emit(SpanLiteral, rest, len(rest)), true
	}

	if openIdx > 0 {
		return s.emit(SpanLiteral, rest[:openIdx], openIdx), true
	}

	expr := rest[exprStart : exprStart+closeIdx]
	consumed := exprStart + closeIdx + len(s.delims.Close)
	return s.emit(SpanDirective, expr, consumed), true
}

func (s *Scanner) emit(typ SpanType, content string, consumed int) Span {
	span := Span{Type: typ, Content: content, Position: filepos.NewPositionInFile(s.line, s.name)}
	s.line += strings.Count(s.data[s.offset:s.offset+consumed], "\n")
	s.offset += consumed
	return span
}

func scanAll(template string, delims DelimiterPair, associatedName string) ([]Span, error) {
	scanner, err := NewScanner(template, delims, associatedName)
	if err != nil {
		return nil, err
	}

	var spans []Span
	for {
		span, ok := scanner.Next()
		if !ok {
			break
		}
		spans = append(spans, span)
	}
	return spans, nil
}
