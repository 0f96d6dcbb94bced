// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// WrapperKey is the optional top-level key a configuration block lives
// under. A side configuration document may use it or place the same shape at
// the top level; a block embedded in a context document must use it.
const WrapperKey = "templator-js"

// Document is the parsed form of a delimiter configuration document.
type Document struct {
	Options Options                 `json:"options" toml:"options" yaml:"options"`
	Files   map[string]FileOverride `json:"files" toml:"files" yaml:"files"`
}

type Options struct {
	Delimiters             *Delimiters `json:"delimiters" toml:"delimiters" yaml:"delimiters"`
	MinimumRequiredVersion string      `json:"minimumRequiredVersion" toml:"minimumRequiredVersion" yaml:"minimumRequiredVersion"`
}

type Delimiters struct {
	Open  string `json:"open" toml:"open" yaml:"open"`
	Close string `json:"close" toml:"close" yaml:"close"`
}

type FileOverride struct {
	OpenDelimiter  string `json:"openDelimiter" toml:"openDelimiter" yaml:"openDelimiter"`
	CloseDelimiter string `json:"closeDelimiter" toml:"closeDelimiter" yaml:"closeDelimiter"`
}

type wrappedDocument struct {
	Wrapped *Document `json:"templator-js" toml:"templator-js" yaml:"templator-js"`
}

// ParseDocument parses a side configuration document (JSON, TOML or YAML by
// file extension). The WrapperKey wrapper is optional.
func ParseDocument(data []byte, path string) (*Document, error) {
	wrapped, err := parseWrapped(data, path)
	if err != nil {
		return nil, fmt.Errorf("Parsing configuration document '%s': %s", path, err)
	}
	if wrapped != nil {
		return wrapped, nil
	}

	var doc Document
	err = unmarshalByExt(data, path, &doc)
	if err != nil {
		return nil, fmt.Errorf("Parsing configuration document '%s': %s", path, err)
	}
	return &doc, nil
}

// ExtractFromContext pulls an embedded configuration block out of a context
// document. Returns nil when the document carries none. Unlike side
// documents, the WrapperKey wrapper is required here so that ordinary
// context fields are not mistaken for configuration.
func ExtractFromContext(data []byte, path string) (*Document, error) {
	wrapped, err := parseWrapped(data, path)
	if err != nil {
		// the context document is validated separately; a block that does
		// not parse as configuration is treated as absent
		return nil, nil
	}
	return wrapped, nil
}

func parseWrapped(data []byte, path string) (*Document, error) {
	var wrapper wrappedDocument
	err := unmarshalByExt(data, path, &wrapper)
	if err != nil {
		return nil, err
	}
	return wrapper.Wrapped, nil
}

func unmarshalByExt(data []byte, path string, obj interface{}) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Unmarshal(data, obj)
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, obj)
	default:
		return json.Unmarshal(data, obj)
	}
}
