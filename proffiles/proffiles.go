// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package proffiles locates profiling run files beneath a directory
// tree and selects the most recently created of them.
//
// A profiling tree looks like
//
//	Saved/Profiling/<test>/<run folder>/<file>.csv
//
// Only files inside subdirectories of the root are considered; files
// placed directly in the root are not run output and are ignored.
package proffiles

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/djherbis/times"
)

const (
	// DefaultExt is the suffix of profiling run files.
	DefaultExt = ".csv"

	// DefaultKeep is the number of most recent runs kept for plotting.
	DefaultKeep = 10
)

// Folders returns every directory beneath root, at any depth, in
// lexical walk order. The root itself is not included.
//
// An error reading root or any directory below it stops the walk and
// is returned.
func Folders(root string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}
	return dirs, nil
}

// Find returns the paths of the files directly inside dir whose names
// end in ext. The match is case-sensitive. Subdirectories are not
// searched, even if their names end in ext.
func Find(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	return paths, nil
}

// A CreatedFunc reports the creation time of the file at path.
type CreatedFunc func(path string) (time.Time, error)

// Created returns the creation time of path as the host filesystem
// records it. On Unix-like systems this is the inode change time; where
// that is unavailable the birth time is used, and failing both, the
// modification time.
func Created(path string) (time.Time, error) {
	ts, err := times.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	switch {
	case ts.HasChangeTime():
		return ts.ChangeTime(), nil
	case ts.HasBirthTime():
		return ts.BirthTime(), nil
	}
	return ts.ModTime(), nil
}

// Recent sorts paths by creation time, oldest first, and returns the
// last n of them. Paths with equal creation times keep their relative
// order. If created is nil, Created is used.
//
// Recent does not modify paths.
func Recent(paths []string, n int, created CreatedFunc) ([]string, error) {
	if created == nil {
		created = Created
	}
	type stamped struct {
		path string
		t    time.Time
	}
	files := make([]stamped, len(paths))
	for i, p := range paths {
		t, err := created(p)
		if err != nil {
			return nil, err
		}
		files[i] = stamped{p, t}
	}
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].t.Before(files[j].t)
	})

	if n < 0 {
		n = 0
	}
	if len(files) > n {
		files = files[len(files)-n:]
	}
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.path
	}
	return out, nil
}

// Collect finds every file ending in ext in the folders beneath root
// and returns the n most recently created, oldest first. Creation
// times come from created, or Created if it is nil.
func Collect(root, ext string, n int, created CreatedFunc) ([]string, error) {
	folders, err := Folders(root)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, folder := range folders {
		found, err := Find(folder, ext)
		if err != nil {
			return nil, err
		}
		paths = append(paths, found...)
	}
	return Recent(paths, n, created)
}
