// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package contextdoc loads context documents (JSON, TOML or YAML, selected by
file extension) into the data model the markup engine resolves against:
scalars, []interface{} sequences and *orderedmap.Map mappings.
*/
package contextdoc
