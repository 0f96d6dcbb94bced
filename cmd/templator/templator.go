// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	uierrs "github.com/cppforlife/go-cli-ui/errors"

	"templator.dev/templator/pkg/cmd"
	cmdrender "templator.dev/templator/pkg/cmd/render"
)

func main() {
	command := cmd.NewDefaultTemplatorCmd()

	err := command.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "templator: Error: %s\n", uierrs.NewMultiLineError(err))
		os.Exit(cmdrender.ExitCode(err))
	}
}
