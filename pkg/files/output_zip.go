// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"

	"templator.dev/templator/pkg/cmd/ui"
)

// OutputZip writes rendered files into a single zip archive. Entries appear
// in the order given (callers pass files sorted by relative path), so the
// archive bytes are deterministic for a given render.
type OutputZip struct {
	path  string
	files []OutputFile
	ui    ui.UI
}

func NewOutputZip(path string, files []OutputFile, ui ui.UI) *OutputZip {
	return &OutputZip{path, files, ui}
}

func (z *OutputZip) Write() error {
	err := checkOutputFiles(z.files)
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(z.path), 0700)
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(z.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer fd.Close()

	zipWriter := zip.NewWriter(fd)

	for _, file := range z.files {
		z.ui.Debugf("archiving: %s\n", file.RelativePath())

		header := &zip.FileHeader{
			Name:   filepath.ToSlash(file.RelativePath()),
			Method: zip.Deflate,
		}
		header.SetMode(file.Mode())

		entry, err := zipWriter.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("Creating zip entry '%s': %s", file.RelativePath(), err)
		}

		_, err = entry.Write(file.Bytes())
		if err != nil {
			return fmt.Errorf("Writing zip entry '%s': %s", file.RelativePath(), err)
		}
	}

	return zipWriter.Close()
}
