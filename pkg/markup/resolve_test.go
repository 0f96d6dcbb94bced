// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"templator.dev/templator/pkg/markup"
	"templator.dev/templator/pkg/orderedmap"
)

func TestResolveDottedPath(t *testing.T) {
	ctx := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
			{Key: "b", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{
				{Key: "c", Value: "deep"},
			})},
		})},
	})

	scope := markup.NewScope(ctx)

	require.Equal(t, "deep", scope.Resolve("a.b.c"))
	require.Equal(t, markup.Missing, scope.Resolve("a.b.missing"))
	require.Equal(t, markup.Missing, scope.Resolve("a.missing.c"))
}

func TestResolveSequenceIndex(t *testing.T) {
	ctx := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "items", Value: []interface{}{
			orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "name", Value: "first"}}),
			orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "name", Value: "second"}}),
		}},
	})

	scope := markup.NewScope(ctx)

	require.Equal(t, "first", scope.Resolve("items.0.name"))
	require.Equal(t, "second", scope.Resolve("items[1].name"))
	require.Equal(t, markup.Missing, scope.Resolve("items.2.name"), "out-of-range index resolves to missing")
	require.Equal(t, markup.Missing, scope.Resolve("items.x.name"))
	require.Equal(t, markup.Missing, scope.Resolve("items.0.name.deeper"), "indexing into a scalar resolves to missing")
}

func TestResolveScopeStack(t *testing.T) {
	outer := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "name", Value: "outer"},
		{Key: "only-outer", Value: "fallback"},
	})
	inner := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "name", Value: "inner"},
	})

	scope := markup.NewScope(outer).Push(inner)

	require.Equal(t, "inner", scope.Resolve("name"), "innermost scope shadows parent")
	require.Equal(t, "fallback", scope.Resolve("only-outer"), "unresolved names fall back to parent scope")
	require.Equal(t, markup.Missing, scope.Resolve("nowhere"))
}

func TestResolveDot(t *testing.T) {
	outer := markup.NewScope("outer")
	inner := outer.Push("inner")

	require.Equal(t, "inner", inner.Resolve("."))
	require.Equal(t, "outer", outer.Value(), "pushing derives a child; the parent scope is unchanged")
}

func TestResolveAnchoredLookupDoesNotFallBack(t *testing.T) {
	outer := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "b", Value: "outer-b"}})},
	})
	inner := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "a", Value: orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "c", Value: "inner-c"}})},
	})

	scope := markup.NewScope(outer).Push(inner)

	// "a" anchors in the inner scope; its missing "b" does not retry outer
	require.Equal(t, markup.Missing, scope.Resolve("a.b"))
	require.Equal(t, "inner-c", scope.Resolve("a.c"))
}
