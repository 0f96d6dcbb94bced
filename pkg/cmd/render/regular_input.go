// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"templator.dev/templator/pkg/cmd/ui"
	"templator.dev/templator/pkg/files"
	"templator.dev/templator/pkg/scripts"
)

type RegularFilesSourceOpts struct {
	files  []string
	output string
	zip    bool

	symlinksAllowAll bool
}

func (s *RegularFilesSourceOpts) Set(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&s.files, "file", "f", nil, "Template file or directory (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().StringVarP(&s.output, "output", "o", "", "File or directory for output (default: stdout)")
	cmd.Flags().BoolVarP(&s.zip, "zip", "z", false, "Write output as a zip archive at the --output path")
	cmd.Flags().BoolVar(&s.symlinksAllowAll, "dangerous-allow-all-symlink-destinations", false, "Symlinks to all destinations are allowed")
}

func (s *RegularFilesSourceOpts) symlinkAllowOpts() files.SymlinkAllowOpts {
	return files.SymlinkAllowOpts{AllowAll: s.symlinksAllowAll}
}

type RegularFilesSource struct {
	opts       *RegularFilesSourceOpts
	ui         ui.UI
	runScripts bool
}

func NewRegularFilesSource(opts *RegularFilesSourceOpts, ui ui.UI, runScripts bool) *RegularFilesSource {
	return &RegularFilesSource{opts, ui, runScripts}
}

func (s *RegularFilesSource) HasInput() bool  { return len(s.opts.files) > 0 }
func (s *RegularFilesSource) HasOutput() bool { return true }

func (s *RegularFilesSource) Input() (RenderInput, error) {
	filesToProcess, err := files.NewSortedFilesFromPaths(s.opts.files, s.opts.symlinkAllowOpts())
	if err != nil {
		return RenderInput{}, NewTemplateReadError(err)
	}

	return RenderInput{Files: filesToProcess}, nil
}

func (s *RegularFilesSource) Output(out RenderOutput) error {
	if out.Err != nil {
		return out.Err
	}

	switch {
	case s.opts.zip:
		if len(s.opts.output) == 0 {
			return fmt.Errorf("Expected --output to be specified when --zip is set")
		}
		err := files.NewOutputZip(s.opts.output, out.Files, s.ui).Write()
		if err != nil {
			return NewOutputWriteError(err)
		}
		return nil

	case len(s.opts.output) > 0:
		if s.singleFileOutput(out) {
			err := out.Files[0].CreateAtPath(s.opts.output)
			if err != nil {
				return NewOutputWriteError(err)
			}
			return s.postProcess(out)
		}

		err := files.NewOutputDirectory(s.opts.output, out.Files, s.ui).Write()
		if err != nil {
			return NewOutputWriteError(err)
		}
		return s.postProcess(out)

	default:
		for _, file := range out.Files {
			s.ui.Printf("%s", file.Bytes())
		}
		return nil
	}
}

// singleFileOutput decides whether --output names a file rather than a
// directory: exactly one rendered file, and the destination is neither an
// existing directory nor spelled with a trailing separator.
func (s *RegularFilesSource) singleFileOutput(out RenderOutput) bool {
	if len(out.Files) != 1 {
		return false
	}
	if strings.HasSuffix(s.opts.output, string(os.PathSeparator)) {
		return false
	}
	fileInfo, err := os.Stat(s.opts.output)
	return err != nil || !fileInfo.IsDir()
}

func (s *RegularFilesSource) postProcess(out RenderOutput) error {
	if !s.runScripts {
		return nil
	}

	dirPath := s.opts.output
	outputFiles := out.Files

	if s.singleFileOutput(out) {
		if !out.Files[0].IsScript() {
			return nil
		}
		// the single output file was written to an exact path
		dirPath = filepath.Dir(s.opts.output)
		outputFiles = []files.OutputFile{
			files.NewOutputFile(filepath.Base(s.opts.output), out.Files[0].Bytes(), files.TypeScript),
		}
	}

	err := scripts.NewRunner(s.ui).RunAll(dirPath, outputFiles)
	if err != nil {
		return NewOutputWriteError(err)
	}
	return nil
}
