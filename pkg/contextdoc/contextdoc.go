// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package contextdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"templator.dev/templator/pkg/orderedmap"
)

// Load parses a context document. JSON documents preserve field order;
// numbers stay json.Number so their literal text survives stringification.
// A top-level "items" field that is not a sequence is wrapped into a
// one-element sequence (compatibility quirk, kept on purpose).
func Load(data []byte, path string) (interface{}, error) {
	var val interface{}
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		val, err = loadTOML(data)
	case ".yaml", ".yml":
		val, err = loadYAML(data)
	default:
		val, err = loadJSON(data)
	}
	if err != nil {
		return nil, err
	}

	return normalizeItems(val), nil
}

func normalizeItems(val interface{}) interface{} {
	topMap, ok := val.(*orderedmap.Map)
	if !ok {
		return val
	}
	items, found := topMap.Get("items")
	if found {
		if _, isSeq := items.([]interface{}); !isSeq {
			topMap.Set("items", []interface{}{items})
		}
	}
	return val
}

func loadJSON(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	val, err := decodeJSONValue(dec)
	if err != nil {
		return nil, fmt.Errorf("Parsing JSON: %s", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("Parsing JSON: expected a single top-level value")
	}
	return val, nil
}

func decodeJSONValue(dec *json.Decoder) (interface{}, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil // string, json.Number, bool or nil
	}

	switch delim {
	case '{':
		result := orderedmap.NewMap()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("expected string key, got %v", keyTok)
			}
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			result.Set(key, val)
		}
		_, err := dec.Token() // consume '}'
		return result, err

	case '[':
		result := []interface{}{}
		for dec.More() {
			val, err := decodeJSONValue(dec)
			if err != nil {
				return nil, err
			}
			result = append(result, val)
		}
		_, err := dec.Token() // consume ']'
		return result, err

	default:
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

func loadTOML(data []byte) (interface{}, error) {
	var topMap map[string]interface{}
	err := toml.Unmarshal(data, &topMap)
	if err != nil {
		return nil, fmt.Errorf("Parsing TOML: %s", err)
	}
	return orderedmap.Conversion{Object: generalizeTOML(topMap)}.FromUnorderedMaps(), nil
}

// generalizeTOML rewrites the typed slices the TOML decoder produces (eg
// []map[string]interface{} for arrays of tables) into plain []interface{}.
func generalizeTOML(val interface{}) interface{} {
	switch typedVal := val.(type) {
	case map[string]interface{}:
		for k, v := range typedVal {
			typedVal[k] = generalizeTOML(v)
		}
		return typedVal
	case []map[string]interface{}:
		result := make([]interface{}, 0, len(typedVal))
		for _, item := range typedVal {
			result = append(result, generalizeTOML(item))
		}
		return result
	case []interface{}:
		for i, item := range typedVal {
			typedVal[i] = generalizeTOML(item)
		}
		return typedVal
	default:
		return typedVal
	}
}

func loadYAML(data []byte) (interface{}, error) {
	var node yaml.Node
	err := yaml.Unmarshal(data, &node)
	if err != nil {
		return nil, fmt.Errorf("Parsing YAML: %s", err)
	}
	if node.Kind == 0 {
		return nil, nil // empty document
	}
	return yamlNodeValue(&node)
}

func yamlNodeValue(node *yaml.Node) (interface{}, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return yamlNodeValue(node.Content[0])

	case yaml.MappingNode:
		result := orderedmap.NewMap()
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode := node.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("Parsing YAML: expected scalar mapping key at line %d", keyNode.Line)
			}
			val, err := yamlNodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			result.Set(keyNode.Value, val)
		}
		return result, nil

	case yaml.SequenceNode:
		result := []interface{}{}
		for _, itemNode := range node.Content {
			val, err := yamlNodeValue(itemNode)
			if err != nil {
				return nil, err
			}
			result = append(result, val)
		}
		return result, nil

	case yaml.ScalarNode:
		var val interface{}
		err := node.Decode(&val)
		if err != nil {
			return nil, fmt.Errorf("Parsing YAML: %s", err)
		}
		return val, nil

	case yaml.AliasNode:
		return yamlNodeValue(node.Alias)

	default:
		return nil, fmt.Errorf("Parsing YAML: unsupported node kind %d", node.Kind)
	}
}
