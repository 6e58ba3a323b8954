// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profcsv

// A Files reads the summary rows from a sequence of report files.
//
// Its API is modeled on bufio.Scanner. Each file is opened, read in
// full and closed before the next one is opened.
type Files struct {
	// Paths is the list of report files to read, in order.
	Paths []string

	next int
	row  *Row
	err  error
}

// Scan advances to the next file in Paths and reports whether its row
// was read. The caller should use the Row method to get the row. If
// Scan reaches the end of Paths, or if any file fails to open or parse,
// it returns false. In this case, the caller should use the Err method
// to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil || f.next >= len(f.Paths) {
		f.row = nil
		return false
	}
	path := f.Paths[f.next]
	f.next++
	f.row, f.err = ReadFile(path)
	return f.err == nil
}

// Row returns the row that was just read by Scan.
func (f *Files) Row() *Row {
	return f.row
}

// Err returns the error that stopped Scan, if any.
// If Scan read every file successfully, or if Scan has not yet
// returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
