// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"github.com/spf13/cobra"
)

// ContextFlags are the data and delimiter configuration inputs of a render.
type ContextFlags struct {
	Context string
	Config  string
	Open    string
	Close   string
}

func (f *ContextFlags) Set(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.Context, "context", "c", "", "Context document (ie local path, HTTP URL, -)")
	cmd.Flags().StringVar(&f.Config, "config", "", "Delimiter configuration document (ie local path, HTTP URL, -)")
	cmd.Flags().StringVar(&f.Open, "open", "", "Open delimiter (overrides configured delimiters)")
	cmd.Flags().StringVar(&f.Close, "close", "", "Close delimiter (overrides configured delimiters)")
}
