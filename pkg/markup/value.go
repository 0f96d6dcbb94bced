// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"encoding/json"
	"fmt"
	"strconv"

	"templator.dev/templator/pkg/orderedmap"
)

// IsTruthy reports whether a resolved value causes a section body to render.
// The rule is enumerated rather than borrowed from any host language:
// missing, null, false, empty sequence, empty mapping and empty string are
// falsy; everything else (including 0) is truthy.
func IsTruthy(val interface{}) bool {
	switch typedVal := val.(type) {
	case missing:
		return false
	case nil:
		return false
	case bool:
		return typedVal
	case string:
		return len(typedVal) > 0
	case []interface{}:
		return len(typedVal) > 0
	case *orderedmap.Map:
		return typedVal.Len() > 0
	default:
		return true
	}
}

// FormatValue produces the string form of a resolved value for a value
// directive. Missing and null render as empty string; numbers and booleans
// stringify canonically. Sequences and mappings have no specified
// representation; they are encoded as compact JSON with sorted keys, which
// at least keeps the output deterministic.
func FormatValue(val interface{}) (string, error) {
	switch typedVal := val.(type) {
	case missing:
		return "", nil
	case nil:
		return "", nil
	case string:
		return typedVal, nil
	case json.Number:
		return typedVal.String(), nil
	case bool:
		return strconv.FormatBool(typedVal), nil
	case int:
		return strconv.Itoa(typedVal), nil
	case int64:
		return strconv.FormatInt(typedVal, 10), nil
	case uint64:
		return strconv.FormatUint(typedVal, 10), nil
	case float64:
		return strconv.FormatFloat(typedVal, 'f', -1, 64), nil
	case []interface{}, *orderedmap.Map:
		bs, err := json.Marshal(orderedmap.Conversion{Object: typedVal}.AsUnorderedStringMaps())
		if err != nil {
			return "", fmt.Errorf("Encoding value: %s", err)
		}
		return string(bs), nil
	default:
		return fmt.Sprintf("%v", typedVal), nil
	}
}
