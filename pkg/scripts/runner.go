// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package scripts executes rendered .script files through the shell as an
optional post-processing step of batch rendering.
*/
package scripts

import (
	"fmt"
	"os/exec"

	"templator.dev/templator/pkg/cmd/ui"
	"templator.dev/templator/pkg/files"
)

// Runner executes script outputs that were written under an output
// directory. Scripts run with the output directory as working directory;
// combined output is forwarded to the UI.
type Runner struct {
	ui    ui.UI
	shell string
}

func NewRunner(ui ui.UI) *Runner {
	return &Runner{ui: ui, shell: "sh"}
}

func (r *Runner) RunAll(dirPath string, outputFiles []files.OutputFile) error {
	for _, file := range outputFiles {
		if !file.IsScript() {
			continue
		}

		err := r.run(dirPath, file)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) run(dirPath string, file files.OutputFile) error {
	scriptPath := file.Path(dirPath)
	r.ui.Debugf("running: %s\n", scriptPath)

	cmd := exec.Command(r.shell, scriptPath)
	cmd.Dir = dirPath

	out, err := cmd.CombinedOutput()
	if len(out) > 0 {
		r.ui.Printf("%s", out)
	}
	if err != nil {
		return fmt.Errorf("Running script '%s': %s", scriptPath, err)
	}
	return nil
}
