// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"templator.dev/templator/pkg/cmd/ui"
	"templator.dev/templator/pkg/files"
)

func TestBulkFilesSourceInput(t *testing.T) {
	opts := BulkFilesSourceOpts{
		bulkIn: `{"files": [{"name": "b.tpl", "data": "B"}, {"name": "a.tpl", "data": "A"}]}`,
	}

	in, err := NewBulkFilesSource(&opts, ui.NewTTY(false)).Input()
	require.NoError(t, err)
	require.Len(t, in.Files, 2)
	require.Equal(t, "a.tpl", in.Files[0].RelativePath())
	require.Equal(t, "b.tpl", in.Files[1].RelativePath())

	data, err := in.Files[0].Bytes()
	require.NoError(t, err)
	require.Equal(t, "A", string(data))
}

func TestBulkFilesSourceInputInvalid(t *testing.T) {
	opts := BulkFilesSourceOpts{bulkIn: `{not json`}

	_, err := NewBulkFilesSource(&opts, ui.NewTTY(false)).Input()
	require.Error(t, err)
	require.Equal(t, ExitCodeTemplateRead, ExitCode(err))
}

func TestBulkFilesSourceOutput(t *testing.T) {
	var stdout bytes.Buffer

	opts := BulkFilesSourceOpts{bulkOut: true}
	src := NewBulkFilesSource(&opts, ui.NewCustomWriterTTY(false, &stdout, nil))

	out := RenderOutput{Files: []files.OutputFile{
		files.NewOutputFile("page.html", []byte("rendered"), files.TypeText),
	}}

	err := src.Output(out)
	require.NoError(t, err)
	require.Equal(t, `{"files":[{"name":"page.html","data":"rendered"}]}`, stdout.String())
}

func TestBulkFilesSourceOutputError(t *testing.T) {
	var stdout bytes.Buffer

	opts := BulkFilesSourceOpts{bulkOut: true}
	src := NewBulkFilesSource(&opts, ui.NewCustomWriterTTY(false, &stdout, nil))

	err := src.Output(RenderOutput{Err: fmt.Errorf("render broke")})
	require.NoError(t, err, "bulk output reports render failures in-band")
	require.Equal(t, `{"errors":"render broke"}`, stdout.String())
}

func TestRegularFilesSourceStdoutOutput(t *testing.T) {
	var stdout bytes.Buffer

	opts := RegularFilesSourceOpts{}
	src := NewRegularFilesSource(&opts, ui.NewCustomWriterTTY(false, &stdout, nil), false)

	out := RenderOutput{Files: []files.OutputFile{
		files.NewOutputFile("a.html", []byte("first\n"), files.TypeText),
		files.NewOutputFile("b.html", []byte("second\n"), files.TypeText),
	}}

	err := src.Output(out)
	require.NoError(t, err)
	require.Equal(t, "first\nsecond\n", stdout.String())
}

func TestRegularFilesSourceZipRequiresOutput(t *testing.T) {
	opts := RegularFilesSourceOpts{zip: true}
	src := NewRegularFilesSource(&opts, ui.NewTTY(false), false)

	err := src.Output(RenderOutput{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "--output")
}
