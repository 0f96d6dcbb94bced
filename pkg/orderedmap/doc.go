// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package orderedmap provides a mapping that remembers the order in which keys
were set, used as the mapping type of the context data model.
*/
package orderedmap
