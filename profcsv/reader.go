// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profcsv extracts the summary row from the CSV reports
// written by the engine's automated performance tests.
//
// A report is a CSV document holding several sections. The section of
// interest starts with a row containing the single field
//
//	Adjusted Results
//
// followed by a header row and then the data row:
//
//	Adjusted Results
//	TestName,AvgFPS,AvgFrameTime,MaxFrameTime,MinRT,...
//	PerformanceTest01,60.1,16.6,33.2,2.1,...
//
// Field 0 of the data row is the test label and every other field is a
// number. A blank line between the marker and the data row counts as a
// row; a quoted field spanning several lines does not add rows.
package profcsv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Marker is the sole field of the row that introduces the summary
// section of a report.
const Marker = "Adjusted Results"

// MinFields is the minimum number of fields in a data row, label
// included.
const MinFields = 13

var (
	ErrNoMarker = errors.New(`no "` + Marker + `" row`)
	ErrNoData   = errors.New(`no data row two rows below "` + Marker + `"`)
	ErrShortRow = fmt.Errorf("data row has fewer than %d fields", MinFields)
)

// A Row is the data row of a report's summary section.
type Row struct {
	// File is the name of the report, as given to Parse.
	File string

	// Line is the 1-based line number of the data row.
	Line int

	// Label is field 0 of the row, typically the test name.
	Label string

	// Values holds fields 1 and up, so the value of CSV column i
	// is Values[i-1].
	Values []float64
}

// Column returns the value in CSV column i of the row. Column 0 is the
// label and has no value; Column panics if i is out of range, like a
// slice index.
func (r *Row) Column(i int) float64 {
	if i == 0 {
		panic("profcsv: column 0 is the label")
	}
	return r.Values[i-1]
}

// Width returns the number of fields in the row, label included.
func (r *Row) Width() int {
	return len(r.Values) + 1
}

// A SyntaxError reports a malformed report, with the position of
// the problem. Err, if set, is the underlying cause.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
	Err      error
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Parse reads a report from r and returns its summary data row.
// fileName is used in errors and Row.File; it is purely diagnostic.
//
// Parse fails if the input is not valid CSV, if it has no marker row,
// if the data row is missing or short, or if any field after the
// label is not a number. Parse never returns a partial row.
func Parse(r io.Reader, fileName string) (*Row, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		found   bool
		rows    int // rows read since the marker
		lastEnd int // line on which the previous record ended
	)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		line, _ := cr.FieldPos(0)

		if !found {
			if len(rec) == 1 && rec[0] == Marker {
				found = true
				lastEnd = endLine(cr, rec)
			}
			continue
		}

		// encoding/csv skips blank lines, but each is still a row.
		blank := line - lastEnd - 1
		if rows+blank >= 2 {
			return nil, noData(fileName, lastEnd+2-rows)
		}
		rows += blank + 1
		if rows == 2 {
			return parseRow(fileName, line, rec)
		}
		lastEnd = endLine(cr, rec)
	}

	if !found {
		return nil, &SyntaxError{fileName, 0, ErrNoMarker.Error(), ErrNoMarker}
	}
	return nil, noData(fileName, lastEnd+2-rows)
}

// endLine returns the line on which rec, the record just read by cr,
// ends. Quoted fields may span lines.
func endLine(cr *csv.Reader, rec []string) int {
	last := rec[len(rec)-1]
	line, _ := cr.FieldPos(len(rec) - 1)
	return line + strings.Count(last, "\n")
}

func noData(fileName string, line int) error {
	return &SyntaxError{fileName, line, ErrNoData.Error(), ErrNoData}
}

func parseRow(fileName string, line int, rec []string) (*Row, error) {
	if len(rec) < MinFields {
		msg := fmt.Sprintf("%s (got %d)", ErrShortRow, len(rec))
		return nil, &SyntaxError{fileName, line, msg, ErrShortRow}
	}
	row := &Row{
		File:   fileName,
		Line:   line,
		Label:  rec[0],
		Values: make([]float64, len(rec)-1),
	}
	for i, field := range rec[1:] {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			msg := fmt.Sprintf("column %d: %q is not a number", i+1, field)
			return nil, &SyntaxError{fileName, line, msg, err}
		}
		row.Values[i] = v
	}
	return row, nil
}

// ReadFile parses the report at path.
func ReadFile(path string) (*Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}
