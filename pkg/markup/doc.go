// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package markup implements the template substitution engine: a single-pass
scanner that splits a template into literal and directive spans, a resolver
that evaluates dotted path expressions against a stack of context scopes, and
a renderer that interprets value, section and inverted-section directives.

Delimiters are configurable per render. Rendering is pure: the same template,
context and delimiter pair always produce byte-identical output.
*/
package markup
