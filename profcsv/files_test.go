// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profcsv

import (
	"errors"
	"io/fs"
	"testing"
)

func TestFiles(t *testing.T) {
	check := func(f *Files, wantLabels int, wantErr error) {
		t.Helper()
		n := 0
		for f.Scan() {
			if f.Row() == nil {
				t.Fatal("Scan returned true with nil Row")
			}
			if f.Row().Label != "PerformanceTest01" {
				t.Errorf("got label %q", f.Row().Label)
			}
			n++
		}
		if n != wantLabels {
			t.Errorf("got %d rows, want %d", n, wantLabels)
		}
		err := f.Err()
		if wantErr == nil && err != nil {
			t.Errorf("got error %v", err)
		} else if wantErr != nil && !errors.Is(err, wantErr) {
			t.Errorf("got error %v, want %v", err, wantErr)
		}
		if f.Scan() {
			t.Error("Scan returned true after end")
		}
	}

	check(&Files{}, 0, nil)
	check(&Files{Paths: []string{"testdata/report.csv", "testdata/report.csv"}}, 2, nil)

	// The first failure stops the scan.
	check(&Files{Paths: []string{"testdata/report.csv", "testdata/nomarker.csv", "testdata/report.csv"}}, 1, ErrNoMarker)
	check(&Files{Paths: []string{"testdata/missing.csv", "testdata/report.csv"}}, 0, fs.ErrNotExist)
}
