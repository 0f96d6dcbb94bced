// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package contextdoc_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"templator.dev/templator/pkg/contextdoc"
	"templator.dev/templator/pkg/orderedmap"
)

func TestLoadJSONPreservesOrder(t *testing.T) {
	data := []byte(`{"zebra": 1, "apple": 2, "mango": 3}`)

	val, err := contextdoc.Load(data, "context.json")
	require.NoError(t, err)

	topMap, ok := val.(*orderedmap.Map)
	require.True(t, ok)
	require.Equal(t, []string{"zebra", "apple", "mango"}, topMap.Keys())
}

func TestLoadJSONNumbersKeepLiteralText(t *testing.T) {
	data := []byte(`{"price": 1.50, "count": 42}`)

	val, err := contextdoc.Load(data, "context.json")
	require.NoError(t, err)

	topMap := val.(*orderedmap.Map)

	price, found := topMap.Get("price")
	require.True(t, found)
	require.Equal(t, json.Number("1.50"), price)

	count, _ := topMap.Get("count")
	require.Equal(t, json.Number("42"), count)
}

func TestLoadJSONNested(t *testing.T) {
	data := []byte(`{"a": {"b": ["x", null, true]}}`)

	val, err := contextdoc.Load(data, "context.json")
	require.NoError(t, err)

	a, _ := val.(*orderedmap.Map).Get("a")
	b, _ := a.(*orderedmap.Map).Get("b")
	require.Equal(t, []interface{}{"x", nil, true}, b)
}

func TestLoadItemsQuirk(t *testing.T) {
	val, err := contextdoc.Load([]byte(`{"items": "solo"}`), "context.json")
	require.NoError(t, err)

	items, _ := val.(*orderedmap.Map).Get("items")
	require.Equal(t, []interface{}{"solo"}, items, "non-sequence top-level items is wrapped")

	val, err = contextdoc.Load([]byte(`{"items": ["a", "b"]}`), "context.json")
	require.NoError(t, err)

	items, _ = val.(*orderedmap.Map).Get("items")
	require.Equal(t, []interface{}{"a", "b"}, items, "a sequence is left alone")

	// the quirk only applies at the top level of a mapping document
	val, err = contextdoc.Load([]byte(`{"nested": {"items": "solo"}}`), "context.json")
	require.NoError(t, err)

	nested, _ := val.(*orderedmap.Map).Get("nested")
	items, _ = nested.(*orderedmap.Map).Get("items")
	require.Equal(t, "solo", items)
}

func TestLoadJSONScalarDocument(t *testing.T) {
	val, err := contextdoc.Load([]byte(`"just a string"`), "context.json")
	require.NoError(t, err)
	require.Equal(t, "just a string", val)
}

func TestLoadJSONInvalid(t *testing.T) {
	_, err := contextdoc.Load([]byte(`{"a": `), "context.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Parsing JSON")

	_, err = contextdoc.Load([]byte(``), "context.json")
	require.Error(t, err)

	_, err = contextdoc.Load([]byte(`{} {}`), "context.json")
	require.Error(t, err)
	require.Contains(t, err.Error(), "single top-level value")
}

func TestLoadTOML(t *testing.T) {
	data := []byte(`
name = "World"

[[items]]
id = "a"

[[items]]
id = "b"
`)

	val, err := contextdoc.Load(data, "context.toml")
	require.NoError(t, err)

	topMap, ok := val.(*orderedmap.Map)
	require.True(t, ok)

	name, _ := topMap.Get("name")
	require.Equal(t, "World", name)

	items, _ := topMap.Get("items")
	seq, ok := items.([]interface{})
	require.True(t, ok, "an array of tables decodes to a plain sequence")
	require.Len(t, seq, 2)

	id, _ := seq[0].(*orderedmap.Map).Get("id")
	require.Equal(t, "a", id)
}

func TestLoadYAMLPreservesOrder(t *testing.T) {
	data := []byte(`
zebra: 1
apple:
  - x
  - y
mango: true
`)

	val, err := contextdoc.Load(data, "context.yaml")
	require.NoError(t, err)

	topMap, ok := val.(*orderedmap.Map)
	require.True(t, ok)
	require.Equal(t, []string{"zebra", "apple", "mango"}, topMap.Keys())

	apple, _ := topMap.Get("apple")
	require.Equal(t, []interface{}{"x", "y"}, apple)
}

func TestLoadYAMLEmptyDocument(t *testing.T) {
	val, err := contextdoc.Load([]byte(``), "context.yml")
	require.NoError(t, err)
	require.Nil(t, val)
}
