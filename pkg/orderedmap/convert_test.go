// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"templator.dev/templator/pkg/orderedmap"
)

func TestAsUnorderedStringMaps(t *testing.T) {
	obj := orderedmap.NewMapWithItems([]orderedmap.MapItem{
		{Key: "name", Value: "x"},
		{Key: "items", Value: []interface{}{
			orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "a", Value: 1}}),
		}},
	})

	result := orderedmap.Conversion{Object: obj}.AsUnorderedStringMaps()
	require.Equal(t, map[string]interface{}{
		"name":  "x",
		"items": []interface{}{map[string]interface{}{"a": 1}},
	}, result)
}

func TestAsUnorderedStringMapsLeavesSourceIntact(t *testing.T) {
	seq := []interface{}{
		orderedmap.NewMapWithItems([]orderedmap.MapItem{{Key: "a", Value: "x"}}),
	}

	_ = orderedmap.Conversion{Object: seq}.AsUnorderedStringMaps()

	// sequence elements keep their original type after conversion
	elem, ok := seq[0].(*orderedmap.Map)
	require.True(t, ok)

	val, found := elem.Get("a")
	require.True(t, found)
	require.Equal(t, "x", val)

	// converting twice is fine; the source never degrades
	_ = orderedmap.Conversion{Object: seq}.AsUnorderedStringMaps()
	_, ok = seq[0].(*orderedmap.Map)
	require.True(t, ok)
}

func TestFromUnorderedMapsSortsKeys(t *testing.T) {
	obj := map[string]interface{}{
		"zebra": 1,
		"apple": map[string]interface{}{"b": 2, "a": 3},
	}

	result := orderedmap.Conversion{Object: obj}.FromUnorderedMaps()

	topMap, ok := result.(*orderedmap.Map)
	require.True(t, ok)
	require.Equal(t, []string{"apple", "zebra"}, topMap.Keys())

	apple, _ := topMap.Get("apple")
	require.Equal(t, []string{"a", "b"}, apple.(*orderedmap.Map).Keys())
}
