// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	cmdrender "templator.dev/templator/pkg/cmd/render"
	"templator.dev/templator/pkg/cmd/ui"
	"templator.dev/templator/pkg/config"
	"templator.dev/templator/pkg/files"
	"templator.dev/templator/pkg/markup"
)

type CheckOptions struct {
	Files  []string
	Config string
	Open   string
	Close  string
	Debug  bool
}

func NewCheckOptions() *CheckOptions {
	return &CheckOptions{}
}

func NewCheckCmd(o *CheckOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check template directive well-formedness without rendering",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringSliceVarP(&o.Files, "file", "f", nil, "Template file or directory (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmd.Flags().StringVar(&o.Config, "config", "", "Delimiter configuration document")
	cmd.Flags().StringVar(&o.Open, "open", "", "Open delimiter (overrides configured delimiters)")
	cmd.Flags().StringVar(&o.Close, "close", "", "Close delimiter (overrides configured delimiters)")
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	return cmd
}

func (o *CheckOptions) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	filesToProcess, err := files.NewSortedFilesFromPaths(o.Files, files.SymlinkAllowOpts{})
	if err != nil {
		return cmdrender.NewTemplateReadError(err)
	}

	cfgDoc, err := o.loadConfigDoc()
	if err != nil {
		return err
	}

	resolved, err := config.Resolve(config.Flags{Open: o.Open, Close: o.Close}, cfgDoc, nil)
	if err != nil {
		return cmdrender.NewConfigLoadError(err)
	}

	checked, invalid := 0, 0

	for _, file := range filesToProcess {
		templateBs, err := file.Bytes()
		if err != nil {
			return cmdrender.NewTemplateReadError(fmt.Errorf("Reading %s: %s", file.Description(), err))
		}

		renderer := markup.NewRenderer(resolved.ForFile(file.RelativePath()))

		err = renderer.Validate(string(templateBs), file.RelativePath())
		if err != nil {
			ui.Warnf("templator: Error: %s\n", err)
			invalid++
			continue
		}

		ui.Debugf("checked: %s\n", file.RelativePath())
		checked++
	}

	if invalid > 0 {
		return cmdrender.NewRenderFailedError(fmt.Errorf("Checked %d file(s), %d invalid", checked+invalid, invalid))
	}

	ui.Printf("Checked %d file(s)\n", checked)
	return nil
}

func (o *CheckOptions) loadConfigDoc() (*config.Document, error) {
	if len(o.Config) == 0 {
		return nil, nil
	}

	docFiles, err := files.NewSortedFilesFromPaths([]string{o.Config}, files.SymlinkAllowOpts{})
	if err != nil {
		return nil, cmdrender.NewConfigLoadError(err)
	}
	if len(docFiles) != 1 {
		return nil, cmdrender.NewConfigLoadError(fmt.Errorf("Expected path '%s' to be a single document, not a directory", o.Config))
	}

	data, err := docFiles[0].Bytes()
	if err != nil {
		return nil, cmdrender.NewConfigLoadError(err)
	}

	doc, err := config.ParseDocument(data, o.Config)
	if err != nil {
		return nil, cmdrender.NewConfigLoadError(err)
	}
	return doc, nil
}
