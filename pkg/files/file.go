// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	scriptExts = []string{".script"}
)

type Type int

const (
	TypeText Type = iota
	TypeScript
)

type File struct {
	src     Source
	relPath string
}

// NewSortedFilesFromPaths builds Files from a list of paths: local files,
// directories (walked recursively, each contained file keeping its path
// relative to the directory), HTTP URLs, or "-" for stdin. Files are
// returned sorted by relative path.
func NewSortedFilesFromPaths(paths []string, symlinkOpts SymlinkAllowOpts) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewCachedSource(NewHTTPSource(path)))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %s", path, err)
			}

			if fileInfo.IsDir() {
				var selectedPaths []string

				err := filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
					if err != nil || fi.IsDir() {
						return err
					}
					if fi.Mode()&os.ModeSymlink != 0 {
						err := Symlink{walkedPath}.IsAllowed(symlinkOpts)
						if err != nil {
							return fmt.Errorf("Checking symlink '%s': %s", walkedPath, err)
						}
					}
					selectedPaths = append(selectedPaths, walkedPath)
					return nil
				})
				if err != nil {
					return nil, fmt.Errorf("Listing files '%s': %s", path, err)
				}

				for _, selectedPath := range selectedPaths {
					fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
				}
			} else {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
			}
		}
	}

	var result []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(fileSrc)
		if err != nil {
			return nil, err
		}
		result = append(result, file)
	}

	return NewSortedFiles(result), nil
}

// NewSortedFiles returns files sorted by relative path, stable for files
// sharing one.
func NewSortedFiles(files []*File) []*File {
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].RelativePath() < files[j].RelativePath()
	})
	return files
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: relPath}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	if r.matchesExt(scriptExts) {
		return TypeScript
	}
	return TypeText
}

func (r *File) matchesExt(exts []string) bool {
	filename := filepath.Base(r.RelativePath())
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
