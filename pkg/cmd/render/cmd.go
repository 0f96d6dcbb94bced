// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"templator.dev/templator/pkg/cmd/ui"
	"templator.dev/templator/pkg/config"
	"templator.dev/templator/pkg/contextdoc"
	"templator.dev/templator/pkg/files"
	"templator.dev/templator/pkg/markup"
)

type RenderOptions struct {
	Debug      bool
	RunScripts bool

	BulkFilesSourceOpts    BulkFilesSourceOpts
	RegularFilesSourceOpts RegularFilesSourceOpts
	ContextFlags           ContextFlags
}

type RenderInput struct {
	Files []*files.File
}

type RenderOutput struct {
	Files []files.OutputFile
	Err   error

	RenderedCount int
	FailedCount   int
}

type FileSource interface {
	HasInput() bool
	HasOutput() bool
	Input() (RenderInput, error)
	Output(RenderOutput) error
}

var _ []FileSource = []FileSource{&BulkFilesSource{}, &RegularFilesSource{}}

func NewOptions() *RenderOptions {
	return &RenderOptions{}
}

func NewCmd(o *RenderOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render",
		Aliases: []string{"r"},
		Short:   "Render templates against a context document",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmd.Flags().BoolVar(&o.RunScripts, "run-scripts", false, "Execute rendered .script files after writing output")
	o.BulkFilesSourceOpts.Set(cmd)
	o.RegularFilesSourceOpts.Set(cmd)
	o.ContextFlags.Set(cmd)
	return cmd
}

func (o *RenderOptions) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Now().Sub(t1))
	}()

	srcs := []FileSource{
		NewBulkFilesSource(&o.BulkFilesSourceOpts, ui),
		NewRegularFilesSource(&o.RegularFilesSourceOpts, ui, o.RunScripts),
	}

	in, err := o.pickSource(srcs, func(s FileSource) bool { return s.HasInput() }).Input()
	if err != nil {
		return err
	}

	out := o.RunWithFiles(in, ui)

	err = o.pickSource(srcs, func(s FileSource) bool { return s.HasOutput() }).Output(out)
	if err != nil {
		return err
	}

	if out.FailedCount > 0 {
		return NewRenderFailedError(fmt.Errorf("Rendered %d file(s), failed %d", out.RenderedCount, out.FailedCount))
	}
	return nil
}

// RunWithFiles renders the given input files. Single-file input fails
// atomically; with multiple files a per-file failure is warned and skipped
// and the remaining files still render.
func (o *RenderOptions) RunWithFiles(in RenderInput, ui ui.UI) RenderOutput {
	ctxVal, ctxCfgDoc, err := o.loadContext()
	if err != nil {
		return RenderOutput{Err: err}
	}

	cfgDoc, err := o.loadConfigDoc()
	if err != nil {
		return RenderOutput{Err: err}
	}

	flags := config.Flags{Open: o.ContextFlags.Open, Close: o.ContextFlags.Close}

	resolved, err := config.Resolve(flags, cfgDoc, ctxCfgDoc)
	if err != nil {
		return RenderOutput{Err: NewConfigLoadError(err)}
	}

	batchMode := len(in.Files) > 1

	var out RenderOutput

	for _, file := range in.Files {
		outputFile, err := o.renderFile(file, resolved, ctxVal)
		if err != nil {
			if !batchMode {
				return RenderOutput{Err: err}
			}
			ui.Warnf("templator: Warning: %s (skipping)\n", err)
			out.FailedCount++
			continue
		}
		out.RenderedCount++
		out.Files = append(out.Files, outputFile)
	}

	if batchMode {
		ui.Warnf("templator: rendered %d file(s), failed %d\n", out.RenderedCount, out.FailedCount)
	}

	return out
}

func (o *RenderOptions) renderFile(file *files.File, resolved *config.Resolved, ctxVal interface{}) (files.OutputFile, error) {
	templateBs, err := file.Bytes()
	if err != nil {
		return files.OutputFile{}, NewTemplateReadError(fmt.Errorf("Reading %s: %s", file.Description(), err))
	}

	delims := resolved.ForFile(file.RelativePath())

	result, err := markup.NewRenderer(delims).Render(string(templateBs), ctxVal, file.RelativePath())
	if err != nil {
		return files.OutputFile{}, NewRenderFailedError(err)
	}

	return files.NewOutputFile(file.RelativePath(), []byte(result), file.Type()), nil
}

func (o *RenderOptions) loadContext() (interface{}, *config.Document, error) {
	if len(o.ContextFlags.Context) == 0 {
		return nil, nil, nil
	}

	data, err := o.readDocument(o.ContextFlags.Context)
	if err != nil {
		return nil, nil, NewContextParseError(err)
	}

	ctxVal, err := contextdoc.Load(data, o.ContextFlags.Context)
	if err != nil {
		return nil, nil, NewContextParseError(fmt.Errorf("Context document '%s': %s", o.ContextFlags.Context, err))
	}

	ctxCfgDoc, err := config.ExtractFromContext(data, o.ContextFlags.Context)
	if err != nil {
		return nil, nil, NewConfigLoadError(err)
	}

	return ctxVal, ctxCfgDoc, nil
}

func (o *RenderOptions) loadConfigDoc() (*config.Document, error) {
	if len(o.ContextFlags.Config) == 0 {
		return nil, nil
	}

	data, err := o.readDocument(o.ContextFlags.Config)
	if err != nil {
		return nil, NewConfigLoadError(err)
	}

	doc, err := config.ParseDocument(data, o.ContextFlags.Config)
	if err != nil {
		return nil, NewConfigLoadError(err)
	}

	return doc, nil
}

// readDocument reads one side document given as a local path, HTTP URL or
// "-" for stdin.
func (o *RenderOptions) readDocument(path string) ([]byte, error) {
	docFiles, err := files.NewSortedFilesFromPaths([]string{path}, o.RegularFilesSourceOpts.symlinkAllowOpts())
	if err != nil {
		return nil, err
	}
	if len(docFiles) != 1 {
		return nil, fmt.Errorf("Expected path '%s' to be a single document, not a directory", path)
	}
	return docFiles[0].Bytes()
}

func (o *RenderOptions) pickSource(srcs []FileSource, pickFunc func(FileSource) bool) FileSource {
	for _, src := range srcs {
		if pickFunc(src) {
			return src
		}
	}
	return srcs[len(srcs)-1]
}
