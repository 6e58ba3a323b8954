// Copyright 2024 The Perfplot Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tbraymarch/perfplot/internal/texttab"
)

var summaryHeader = []string{"metric", "n", "mean", "stddev", "min", "max", "latest", "Δlatest"}

// FormatText writes sums to w as an aligned text table.
func FormatText(w io.Writer, sums []Summary) error {
	var tab texttab.Table
	tab.Row()
	for i, h := range summaryHeader {
		if i == 0 {
			tab.Cell(h)
		} else {
			tab.Cell(h, texttab.Right)
		}
	}
	for _, s := range sums {
		tab.Row().Cell(s.Metric)
		for _, c := range s.cells() {
			tab.Cell(c, texttab.Right)
		}
	}
	return tab.Format(w)
}

// cells returns the formatted numeric columns of s.
func (s Summary) cells() []string {
	return []string{
		strconv.Itoa(s.N),
		ms(s.Mean),
		ms(s.StdDev),
		ms(s.Min),
		ms(s.Max),
		ms(s.Latest),
		delta(s.Delta),
	}
}

func ms(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func delta(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%+.2f", v)
}
