// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup_test

import (
	"strings"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"templator.dev/templator/pkg/markup"
)

func scanAllSpans(t *testing.T, template string, delims markup.DelimiterPair) []markup.Span {
	scanner, err := markup.NewScanner(template, delims, "test.tpl")
	if err != nil {
		t.Fatalf("Expected scanner to be created, but was error: %s", err)
	}

	var spans []markup.Span
	for {
		span, ok := scanner.Next()
		if !ok {
			break
		}
		spans = append(spans, span)
	}
	return spans
}

func TestScannerLiteralOnly(t *testing.T) {
	const data = "no directives\nat all"

	spans := scanAllSpans(t, data, markup.DefaultDelimiters)

	require.Len(t, spans, 1)
	require.Equal(t, markup.SpanLiteral, spans[0].Type)
	require.Equal(t, data, spans[0].Content)
	require.Equal(t, 1, spans[0].Position.LineNum())
}

func TestScannerDirectives(t *testing.T) {
	spans := scanAllSpans(t, "a {{one}} b\nc {{ two }} d", markup.DefaultDelimiters)

	require.Len(t, spans, 5)

	require.Equal(t, markup.SpanLiteral, spans[0].Type)
	require.Equal(t, "a ", spans[0].Content)

	require.Equal(t, markup.SpanDirective, spans[1].Type)
	require.Equal(t, "one", spans[1].Content)
	require.Equal(t, 1, spans[1].Position.LineNum())

	require.Equal(t, markup.SpanLiteral, spans[2].Type)
	require.Equal(t, " b\nc ", spans[2].Content)

	require.Equal(t, markup.SpanDirective, spans[3].Type)
	require.Equal(t, " two ", spans[3].Content)
	require.Equal(t, 2, spans[3].Position.LineNum())

	require.Equal(t, markup.SpanLiteral, spans[4].Type)
	require.Equal(t, " d", spans[4].Content)
	require.Equal(t, 2, spans[4].Position.LineNum())
}

func TestScannerUnterminatedOpenIsLiteral(t *testing.T) {
	spans := scanAllSpans(t, "a {{one}} b {{ never closed", markup.DefaultDelimiters)

	require.Len(t, spans, 3)
	require.Equal(t, markup.SpanDirective, spans[1].Type)
	require.Equal(t, markup.SpanLiteral, spans[2].Type)
	require.Equal(t, " b {{ never closed", spans[2].Content)
}

func TestScannerCloseBeforeOpenIsLiteral(t *testing.T) {
	spans := scanAllSpans(t, "}} {{a}}", markup.DefaultDelimiters)

	require.Len(t, spans, 2)
	require.Equal(t, markup.SpanLiteral, spans[0].Type)
	require.Equal(t, "}} ", spans[0].Content)
	require.Equal(t, markup.SpanDirective, spans[1].Type)
	require.Equal(t, "a", spans[1].Content)
}

func TestScannerCustomDelimiters(t *testing.T) {
	spans := scanAllSpans(t, "x <%name%> y {{not-a-directive}}", markup.DelimiterPair{Open: "<%", Close: "%>"})

	require.Len(t, spans, 3)
	require.Equal(t, markup.SpanDirective, spans[1].Type)
	require.Equal(t, "name", spans[1].Content)
	require.Equal(t, " y {{not-a-directive}}", spans[2].Content)
}

func TestScannerFirstCloseTerminates(t *testing.T) {
	spans := scanAllSpans(t, "{{a}}}}", markup.DefaultDelimiters)

	require.Len(t, spans, 2)
	require.Equal(t, "a", spans[0].Content)
	require.Equal(t, "}}", spans[1].Content)
}

func TestScannerEmptyDelimitersRejected(t *testing.T) {
	_, err := markup.NewScanner("data", markup.DelimiterPair{Open: "", Close: "}}"}, "")
	require.Error(t, err)

	_, err = markup.NewScanner("data", markup.DelimiterPair{Open: "{{", Close: ""}, "")
	require.Error(t, err)
}

func TestScannerSpansCoverInput(t *testing.T) {
	const data = "a{{b}}c{{#d}}e{{/d}}f{{unclosed"

	var rebuilt strings.Builder
	for _, span := range scanAllSpans(t, data, markup.DefaultDelimiters) {
		if span.Type == markup.SpanLiteral {
			rebuilt.WriteString(span.Content)
		} else {
			rebuilt.WriteString("{{" + span.Content + "}}")
		}
	}

	require.Equal(t, data, rebuilt.String())
}

func TestRenderLiteralIdentityFuzz(t *testing.T) {
	fuzzer := fuzz.New().NumElements(0, 512)
	renderer := markup.NewRenderer(markup.DefaultDelimiters)

	for i := 0; i < 100; i++ {
		var template string
		fuzzer.Fuzz(&template)

		// templates without directive spans must render verbatim
		template = strings.ReplaceAll(template, "{", "")
		template = strings.ReplaceAll(template, "}", "")

		result, err := renderer.Render(template, nil, "fuzz.tpl")
		if err != nil {
			t.Fatalf("Expected render to succeed, but was error: %s", err)
		}
		if result != template {
			t.Fatalf("Expected output to equal input verbatim for %q", template)
		}
	}
}
