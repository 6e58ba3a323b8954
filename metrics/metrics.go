// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package metrics gathers named metric series from the summary rows of
// a sequence of performance-test reports.
//
// Each report contributes one value to every series, so all series in a
// Set have the same length and value i of every series comes from the
// i'th report added.
package metrics

import (
	"fmt"

	"github.com/tbraymarch/perfplot/profcsv"
)

// A Column names a CSV column of the summary row. Index counts from 0,
// where column 0 is the test label.
type Column struct {
	Name  string
	Index int
}

// A Layout lists the columns to extract, in presentation order.
type Layout []Column

// DefaultLayout is the column layout of the engine's "Adjusted
// Results" row. All times are in milliseconds. Column 1 (average FPS)
// is not collected.
var DefaultLayout = Layout{
	{"AvgFrameTime", 2},
	{"MaxFrameTime", 3},
	{"MinRenderThread", 4},
	{"AvgRenderThread", 5},
	{"MaxRenderThread", 6},
	{"MinGameThread", 7},
	{"AvgGameThread", 8},
	{"MaxGameThread", 9},
	{"MinGPU", 10},
	{"AvgGPU", 11},
	{"MaxGPU", 12},
}

// Lookup returns the column with the given name.
func (l Layout) Lookup(name string) (Column, bool) {
	for _, c := range l {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// A Series is the sequence of values of one metric, oldest run first.
type Series struct {
	Name   string
	Values []float64
}

// A Run identifies the report a set of values came from.
type Run struct {
	File  string
	Label string
}

// A Set holds one Series per Layout column, all of equal length.
type Set struct {
	Layout Layout

	// Runs records the source of each value, in the order added.
	Runs []Run

	series []*Series
}

// NewSet returns an empty Set for layout.
func NewSet(layout Layout) *Set {
	s := &Set{Layout: layout}
	for _, c := range layout {
		s.series = append(s.series, &Series{Name: c.Name})
	}
	return s
}

// Add appends the value of each layout column in row to the
// corresponding series. If any column is missing from row, Add
// returns an error and leaves s unchanged.
func (s *Set) Add(row *profcsv.Row) error {
	for _, c := range s.Layout {
		if c.Index < 1 || c.Index >= row.Width() {
			return fmt.Errorf("%s:%d: no column %d (%s) in a row of %d fields", row.File, row.Line, c.Index, c.Name, row.Width())
		}
	}
	for i, c := range s.Layout {
		s.series[i].Values = append(s.series[i].Values, row.Column(c.Index))
	}
	s.Runs = append(s.Runs, Run{row.File, row.Label})
	return nil
}

// Len returns the number of rows added to s.
func (s *Set) Len() int {
	return len(s.Runs)
}

// Series returns the series with the given name, or nil if the layout
// has no such column.
func (s *Set) Series(name string) *Series {
	for _, ser := range s.series {
		if ser.Name == name {
			return ser
		}
	}
	return nil
}

// All returns every series in layout order.
func (s *Set) All() []*Series {
	return s.series
}

// Collect reads every file in files and adds its row to a new Set.
// The first file that cannot be read or added fails the collection.
func Collect(files *profcsv.Files, layout Layout) (*Set, error) {
	s := NewSet(layout)
	for files.Scan() {
		if err := s.Add(files.Row()); err != nil {
			return nil, err
		}
	}
	if err := files.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
