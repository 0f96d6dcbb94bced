// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

import (
	"sort"
)

type Conversion struct {
	Object interface{}
}

// AsUnorderedStringMaps converts every *Map within Object into a plain
// map[string]interface{} so that the result can be handed to encoding
// libraries. Ordering information is lost. Object is left untouched;
// sequences are copied rather than rewritten in place.
func (c Conversion) AsUnorderedStringMaps() interface{} {
	return c.asUnorderedStringMaps(c.Object)
}

func (c Conversion) asUnorderedStringMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[string]interface{}:
		panic("Expected *orderedmap.Map instead of map[string]interface{} in asUnorderedStringMaps")

	case *Map:
		result := map[string]interface{}{}
		typedObj.Iterate(func(k string, v interface{}) {
			result[k] = c.asUnorderedStringMaps(v)
		})
		return result

	case []interface{}:
		result := make([]interface{}, len(typedObj))
		for i, item := range typedObj {
			result[i] = c.asUnorderedStringMaps(item)
		}
		return result

	default:
		return typedObj
	}
}

// FromUnorderedMaps converts every map[string]interface{} within Object into
// a *Map with keys in sorted order. Decoders that do not report document
// order (eg TOML) go through this to obtain a deterministic Map.
func (c Conversion) FromUnorderedMaps() interface{} {
	return c.fromUnorderedMaps(c.Object)
}

func (c Conversion) fromUnorderedMaps(object interface{}) interface{} {
	switch typedObj := object.(type) {
	case map[string]interface{}:
		result := NewMap()
		for _, key := range c.sortedMapKeys(typedObj) {
			result.Set(key, c.fromUnorderedMaps(typedObj[key]))
		}
		return result

	case map[interface{}]interface{}:
		panic("Expected map[string]interface{} instead of map[interface{}]interface{} in fromUnorderedMaps")

	case *Map:
		panic("Expected map[string]interface{} instead of *orderedmap.Map in fromUnorderedMaps")

	case []interface{}:
		for i, item := range typedObj {
			typedObj[i] = c.fromUnorderedMaps(item)
		}
		return typedObj

	default:
		return typedObj
	}
}

func (Conversion) sortedMapKeys(m map[string]interface{}) []string {
	var keys []string
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
