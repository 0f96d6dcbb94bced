// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of templator's "commands" -- instances of
cobra.Command (not to be confused with ./cmd which contains the bootstrapping
for executing templator).

For a list of commands run:

	$ templator help

The default command is "render".
*/
package cmd
