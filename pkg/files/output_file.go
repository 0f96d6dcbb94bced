// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"os"
	"path/filepath"
)

// OutputFile is one rendered result destined for a relative path within an
// output destination. Script outputs carry an executable mode.
type OutputFile struct {
	relativePath string
	data         []byte
	mode         os.FileMode
}

func NewOutputFile(relativePath string, data []byte, fileType Type) OutputFile {
	mode := os.FileMode(0600)
	if fileType == TypeScript {
		mode = 0755
	}
	return OutputFile{relativePath, data, mode}
}

func (f OutputFile) RelativePath() string { return f.relativePath }
func (f OutputFile) Bytes() []byte        { return f.data }
func (f OutputFile) Mode() os.FileMode    { return f.mode }

func (f OutputFile) IsScript() bool { return f.mode&0100 != 0 }

func (f OutputFile) Path(dirPath string) string {
	return filepath.Join(dirPath, f.relativePath)
}

func (f OutputFile) Create(dirPath string) error {
	return f.CreateAtPath(f.Path(dirPath))
}

// CreateAtPath writes the file contents to an exact destination path,
// creating parent directories as needed.
func (f OutputFile) CreateAtPath(resultPath string) error {
	err := os.MkdirAll(filepath.Dir(resultPath), 0700)
	if err != nil {
		return err
	}

	fd, err := os.OpenFile(resultPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, f.mode)
	if err != nil {
		return err
	}

	defer fd.Close()

	_, err = fd.Write(f.data)
	if err != nil {
		return err
	}

	// mode is not applied by OpenFile when the file already existed
	return os.Chmod(resultPath, f.mode)
}
