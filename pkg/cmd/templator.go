// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"

	cmdrender "templator.dev/templator/pkg/cmd/render"
	"templator.dev/templator/pkg/version"
)

type TemplatorOptions struct{}

func NewDefaultTemplatorOptions() *TemplatorOptions {
	return &TemplatorOptions{}
}

func NewDefaultTemplatorCmd() *cobra.Command {
	return NewTemplatorCmd(NewDefaultTemplatorOptions())
}

func NewTemplatorCmd(o *TemplatorOptions) *cobra.Command {
	cmd := cmdrender.NewCmd(cmdrender.NewOptions())

	cmd.Use = "templator"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "templator renders delimiter-marked templates"
	cmd.Long = `templator renders delimiter-marked templates against a context document.

Directives between delimiters ('{{' and '}}' unless configured otherwise)
substitute values, iterate sections over sequences, or include sections
conditionally. Delimiters can be overridden globally or per template file.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(cmdrender.NewCmd(cmdrender.NewOptions())) // render as an explicit subcommand
	cmd.AddCommand(NewCheckCmd(NewCheckOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
