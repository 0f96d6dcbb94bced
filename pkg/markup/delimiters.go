// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package markup

import (
	"fmt"
)

// DefaultDelimiters is the compiled-in delimiter pair used when neither
// flags nor configuration documents override it.
var DefaultDelimiters = DelimiterPair{Open: "{{", Close: "}}"}

// DelimiterPair is the pair of marker strings bounding a directive.
type DelimiterPair struct {
	Open  string
	Close string
}

func (p DelimiterPair) Validate() error {
	if len(p.Open) == 0 || len(p.Close) == 0 {
		return fmt.Errorf("Expected open and close delimiters to be non-empty (open '%s', close '%s')", p.Open, p.Close)
	}
	return nil
}
