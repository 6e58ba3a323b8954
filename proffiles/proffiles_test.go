// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package proffiles

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// mkfiles creates the named files (and their parent directories)
// under root. Each file's modification time is base plus its position
// in names, in seconds.
func mkfiles(t *testing.T, root string, base time.Time, names ...string) {
	t.Helper()
	for i, name := range names {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0777); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0666); err != nil {
			t.Fatal(err)
		}
		mt := base.Add(time.Duration(i) * time.Second)
		if err := os.Chtimes(path, mt, mt); err != nil {
			t.Fatal(err)
		}
	}
}

// modTime is a CreatedFunc using modification times, which tests can
// set, unlike change times.
func modTime(path string) (time.Time, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return fi.ModTime(), nil
}

func rel(t *testing.T, root string, paths []string) []string {
	t.Helper()
	var out []string
	for _, p := range paths {
		r, err := filepath.Rel(root, p)
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, filepath.ToSlash(r))
	}
	return out
}

var base = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestFolders(t *testing.T) {
	root := t.TempDir()
	mkfiles(t, root, base, "top.csv", "a/x.csv", "a/b/c/y.csv", "d/z.txt")

	got, err := Folders(root)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "a/b", "a/b/c", "d"}
	if diff := cmp.Diff(want, rel(t, root, got)); diff != "" {
		t.Errorf("Folders mismatch (-want +got):\n%s", diff)
	}
}

func TestFoldersMissingRoot(t *testing.T) {
	_, err := Folders(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("got error %v, want not-exist", err)
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	mkfiles(t, root, base, "b.csv", "a.csv", "c.CSV", "d.csv.bak", "notes.txt", "sub.csv/e.csv")

	got, err := Find(root, ".csv")
	if err != nil {
		t.Fatal(err)
	}
	// Sorted by name, case-sensitive suffix, directories excluded.
	want := []string{"a.csv", "b.csv"}
	if diff := cmp.Diff(want, rel(t, root, got)); diff != "" {
		t.Errorf("Find mismatch (-want +got):\n%s", diff)
	}
}

func TestFindMissingDir(t *testing.T) {
	if _, err := Find(filepath.Join(t.TempDir(), "nope"), ".csv"); err == nil {
		t.Error("got success, want error")
	}
}

func TestRecent(t *testing.T) {
	stamps := map[string]time.Time{
		"c": base.Add(3 * time.Second),
		"a": base.Add(1 * time.Second),
		"b": base.Add(2 * time.Second),
		// Ties keep input order.
		"t1": base,
		"t2": base,
	}
	created := func(p string) (time.Time, error) {
		t, ok := stamps[p]
		if !ok {
			return time.Time{}, fmt.Errorf("no stamp for %s", p)
		}
		return t, nil
	}

	for _, test := range []struct {
		in   []string
		n    int
		want []string
	}{
		{nil, 10, []string{}},
		{[]string{"c", "a", "b"}, 10, []string{"a", "b", "c"}},
		{[]string{"c", "a", "b"}, 2, []string{"b", "c"}},
		{[]string{"c", "a", "b"}, 0, []string{}},
		{[]string{"t2", "c", "t1"}, 10, []string{"t2", "t1", "c"}},
	} {
		in := append([]string(nil), test.in...)
		got, err := Recent(in, test.n, created)
		if err != nil {
			t.Errorf("Recent(%v, %d): %v", test.in, test.n, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Recent(%v, %d) mismatch (-want +got):\n%s", test.in, test.n, diff)
		}
		if diff := cmp.Diff(test.in, in); diff != "" {
			t.Errorf("Recent modified its input:\n%s", diff)
		}
	}

	if _, err := Recent([]string{"a", "missing"}, 10, created); err == nil {
		t.Error("Recent with failing timestamp: got success, want error")
	}
}

func TestCollect(t *testing.T) {
	root := t.TempDir()
	// 15 files spread over three folders, created in name order.
	var names []string
	for i := 0; i < 15; i++ {
		names = append(names, fmt.Sprintf("run%d/f%02d.csv", i%3, i))
	}
	mkfiles(t, root, base, names...)
	mkfiles(t, root, base.Add(-time.Hour), "stray.csv", "run0/ignored.txt")

	got, err := Collect(root, DefaultExt, DefaultKeep, modTime)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(names[5:], rel(t, root, got)); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectFewer(t *testing.T) {
	root := t.TempDir()
	mkfiles(t, root, base, "x/2.csv", "x/1.csv", "y/3.csv")

	got, err := Collect(root, DefaultExt, DefaultKeep, modTime)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"x/2.csv", "x/1.csv", "y/3.csv"}
	if diff := cmp.Diff(want, rel(t, root, got)); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}

func TestCreated(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "f.csv")
	if err := os.WriteFile(path, nil, 0666); err != nil {
		t.Fatal(err)
	}
	ct, err := Created(path)
	if err != nil {
		t.Fatal(err)
	}
	if ct.IsZero() {
		t.Error("Created returned the zero time")
	}
	if _, err := Created(filepath.Join(root, "missing")); err == nil {
		t.Error("Created of missing file: got success, want error")
	}
}
