// Copyright 2024 The Templator Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"path/filepath"
	"strings"
)

type Symlink struct {
	path string
}

type SymlinkAllowOpts struct {
	AllowAll        bool
	AllowedDstPaths []string
}

func (s Symlink) IsAllowed(opts SymlinkAllowOpts) error {
	if opts.AllowAll {
		return nil
	}

	dstPath, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		return fmt.Errorf("Eval symlink: %s", err)
	}

	for _, allowedDstPath := range opts.AllowedDstPaths {
		matched, err := s.isIn(dstPath, allowedDstPath)
		if matched || err != nil {
			return err
		}
	}

	return fmt.Errorf("Expected symlink file '%s' -> '%s' to be allowed, but was not", s.path, dstPath)
}

func (s Symlink) isIn(path, allowedPath string) (bool, error) {
	var err error

	// Abs runs clean on the result
	path, err = filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("Abs path '%s': %s", path, err)
	}

	allowedPath, err = filepath.Abs(allowedPath)
	if err != nil {
		return false, fmt.Errorf("Abs path '%s': %s", allowedPath, err)
	}

	pathPieces := strings.Split(path, string(filepath.Separator))
	allowedPathPieces := strings.Split(allowedPath, string(filepath.Separator))

	if len(allowedPathPieces) > len(pathPieces) {
		return false, nil
	}

	for i := range allowedPathPieces {
		if allowedPathPieces[i] != pathPieces[i] {
			return false, nil
		}
	}

	return true, nil
}
