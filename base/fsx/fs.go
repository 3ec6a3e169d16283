// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides helpers for opening host directories
// through the [fs.FS] interface.
package fsx

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DirFS returns the directory part of the given file path as an [os.DirFS]
// and the file name as a string, so the file can be read through [fs.FS].
func DirFS(fpath string) (fs.FS, string, error) {
	fabs, err := filepath.Abs(fpath)
	if err != nil {
		return nil, "", err
	}
	dir, fname := filepath.Split(fabs)
	return os.DirFS(dir), fname, nil
}

// RootFS returns the given directory as an [os.DirFS], failing
// if it does not exist or is not a directory.
func RootFS(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}
	return os.DirFS(dir), nil
}
